package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedZoomer() *Zoomer {
	z := NewZoomer(DefaultMinZoomSpan)
	z.Load(TimeWindow{Start: at(0), End: at(8)}, 10)
	return z
}

func commitOK(t *testing.T, z *Zoomer, req Proposal) {
	t.Helper()
	p, ok := z.Propose(req)
	require.True(t, ok)
	require.True(t, z.Commit(p))
}

func TestZoomerLoad(t *testing.T) {
	z := loadedZoomer()
	assert.True(t, z.State().Time.Equal(TimeWindow{Start: at(0), End: at(8)}))
	assert.True(t, z.State().Lines.IsAll())
	assert.Equal(t, PhaseUnzoomed, z.Phase())
}

func TestZoomerDamper(t *testing.T) {
	z := loadedZoomer()

	narrow := TimeWindow{Start: at(1), End: at(1).Add(30 * time.Second)}
	_, ok := z.Propose(TimeProposal(narrow))
	assert.False(t, ok)

	p, ok := z.Propose(Proposal{Time: narrow, ChangeTime: true, Lines: LineWindow{Start: 2, End: 3}, ChangeLines: true})
	require.True(t, ok)
	assert.False(t, p.ChangeTime)
	assert.True(t, p.ChangeLines)

	exact := TimeWindow{Start: at(1), End: at(1).Add(time.Minute)}
	_, ok = z.Propose(TimeProposal(exact))
	assert.False(t, ok, "a span equal to the damper is dropped")

	wider := TimeWindow{Start: at(1), End: at(1).Add(time.Minute + time.Second)}
	_, ok = z.Propose(TimeProposal(wider))
	assert.True(t, ok)
}

func TestZoomerOrdersTimeWindow(t *testing.T) {
	z := loadedZoomer()
	p, ok := z.Propose(TimeProposal(TimeWindow{Start: at(3), End: at(2)}))
	require.True(t, ok)
	assert.True(t, p.Time.Start.Equal(at(2)))
	assert.True(t, p.Time.End.Equal(at(3)))
}

func TestZoomerPhases(t *testing.T) {
	z := loadedZoomer()

	commitOK(t, z, TimeProposal(TimeWindow{Start: at(1), End: at(2)}))
	assert.Equal(t, PhaseTimeZoomed, z.Phase())

	commitOK(t, z, LineProposal(LineWindow{Start: 0, End: 3}))
	assert.Equal(t, PhaseBothZoomed, z.Phase())

	commitOK(t, z, TimeProposal(TimeWindow{Start: at(0), End: at(8)}))
	assert.Equal(t, PhaseLineZoomed, z.Phase())

	commitOK(t, z, LineProposal(LineWindow{Start: 0, End: 9}))
	assert.Equal(t, PhaseUnzoomed, z.Phase())
}

func TestZoomerNoOp(t *testing.T) {
	z := loadedZoomer()
	_, ok := z.Propose(TimeProposal(TimeWindow{Start: at(0), End: at(8)}))
	assert.False(t, ok)
	_, ok = z.Propose(LineProposal(AllLines))
	assert.False(t, ok)
	assert.False(t, z.Commit(Proposal{}))
}

func TestZoomerClampsLines(t *testing.T) {
	z := loadedZoomer()

	p, ok := z.Propose(LineProposal(LineWindow{Start: -3, End: 40}))
	require.True(t, ok)
	assert.Equal(t, LineWindow{Start: 0, End: 9}, p.Lines)

	p, _ = z.Propose(LineProposal(LineWindow{Start: 7, End: 2}))
	assert.Equal(t, LineWindow{Start: 2, End: 7}, p.Lines)

	p, _ = z.Propose(LineProposal(LineWindow{Start: 4, End: Unbounded}))
	assert.Equal(t, LineWindow{Start: 4, End: Unbounded}, p.Lines)

	empty := NewZoomer(DefaultMinZoomSpan)
	_, ok = empty.Propose(LineProposal(LineWindow{Start: 1, End: 2}))
	assert.False(t, ok)
}

func TestZoomerResetWidensOnly(t *testing.T) {
	z := loadedZoomer()
	commitOK(t, z, Proposal{
		Time: TimeWindow{Start: at(1), End: at(2)}, ChangeTime: true,
		Lines: LineWindow{Start: 3, End: 5}, ChangeLines: true,
	})

	p, ok := z.Reset()
	require.True(t, ok)
	assert.True(t, p.Time.Equal(TimeWindow{Start: at(0), End: at(8)}))
	assert.Equal(t, AllLines, p.Lines)
	z.Commit(p)
	assert.Equal(t, PhaseUnzoomed, z.Phase())

	_, ok = z.Reset()
	assert.False(t, ok)

	wide := TimeWindow{Start: at(-2), End: at(10)}
	commitOK(t, z, TimeProposal(wide))
	_, ok = z.Reset()
	assert.False(t, ok, "reset must not narrow a window wider than the extent")

	commitOK(t, z, TimeProposal(TimeWindow{Start: at(4), End: at(12)}))
	p, ok = z.Reset()
	require.True(t, ok)
	assert.True(t, p.Time.Equal(TimeWindow{Start: at(0), End: at(12)}))
}

func TestZoomerResetKeepsLoadWindow(t *testing.T) {
	z := loadedZoomer()
	z.SetBounds(TimeWindow{Start: at(2), End: at(8)}, 10)
	commitOK(t, z, TimeProposal(TimeWindow{Start: at(3), End: at(4)}))

	p, ok := z.Reset()
	require.True(t, ok)
	assert.True(t, p.Time.Equal(TimeWindow{Start: at(0), End: at(8)}))
}

func TestZoomerPan(t *testing.T) {
	z := loadedZoomer()
	_, ok := z.Pan(time.Hour)
	assert.False(t, ok, "full window cannot pan")

	commitOK(t, z, TimeProposal(TimeWindow{Start: at(1), End: at(3)}))

	p, ok := z.Pan(30 * time.Minute)
	require.True(t, ok)
	assert.True(t, p.Time.Equal(TimeWindow{Start: at(1.5), End: at(3.5)}))

	p, ok = z.Pan(-2 * time.Hour)
	require.True(t, ok)
	assert.True(t, p.Time.Equal(TimeWindow{Start: at(0), End: at(2)}))

	p, ok = z.Pan(10 * time.Hour)
	require.True(t, ok)
	assert.True(t, p.Time.Equal(TimeWindow{Start: at(6), End: at(8)}))
}

func TestZoomerScale(t *testing.T) {
	z := loadedZoomer()
	commitOK(t, z, TimeProposal(TimeWindow{Start: at(2), End: at(4)}))

	p, ok := z.Scale(0.5)
	require.True(t, ok)
	assert.True(t, p.Time.Equal(TimeWindow{Start: at(2.5), End: at(3.5)}))

	p, ok = z.Scale(10)
	require.True(t, ok)
	assert.True(t, p.Time.Equal(TimeWindow{Start: at(0), End: at(8)}))

	_, ok = z.Scale(0)
	assert.False(t, ok)
}

func TestZoomerShiftLines(t *testing.T) {
	z := loadedZoomer()
	_, ok := z.ShiftLines(1)
	assert.False(t, ok, "all lines visible")

	commitOK(t, z, LineProposal(LineWindow{Start: 2, End: 4}))

	p, ok := z.ShiftLines(10)
	require.True(t, ok)
	assert.Equal(t, LineWindow{Start: 7, End: 9}, p.Lines)

	p, ok = z.ShiftLines(-10)
	require.True(t, ok)
	assert.Equal(t, LineWindow{Start: 0, End: 2}, p.Lines)
}

func TestZoomerSetBoundsReclamps(t *testing.T) {
	z := loadedZoomer()
	commitOK(t, z, LineProposal(LineWindow{Start: 6, End: 9}))

	z.SetBounds(z.Extent(), 5)
	assert.Equal(t, LineWindow{Start: 4, End: 4}, z.State().Lines)
}
