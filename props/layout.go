package props

// SplitDirection is the axis a container layout splits along.
type SplitDirection int

const (
	SplitVertical   SplitDirection = iota // chunks stacked top to bottom
	SplitHorizontal                       // chunks laid left to right
)

// ConstraintKind discriminates layout constraints.
type ConstraintKind int

const (
	ConstraintLength ConstraintKind = iota
	ConstraintPercentage
	ConstraintRatio
	ConstraintMin
	ConstraintMax
)

// Constraint sizes one chunk of a split layout.
type Constraint struct {
	Kind ConstraintKind
	// Value is cells for Length/Min/Max, 0-100 for Percentage.
	Value int
	// Num/Den are used by Ratio.
	Num, Den int
}

// Length fixes a chunk to n cells.
func Length(n int) Constraint { return Constraint{Kind: ConstraintLength, Value: n} }

// Percentage sizes a chunk to pct percent of the area.
func Percentage(pct int) Constraint { return Constraint{Kind: ConstraintPercentage, Value: pct} }

// Ratio sizes a chunk to num/den of the area.
func Ratio(num, den int) Constraint { return Constraint{Kind: ConstraintRatio, Num: num, Den: den} }

// Min gives a chunk at least n cells, growing with leftover space.
func Min(n int) Constraint { return Constraint{Kind: ConstraintMin, Value: n} }

// Max gives a chunk at most n cells.
func Max(n int) Constraint { return Constraint{Kind: ConstraintMax, Value: n} }

// LayoutSpec describes how a container splits its area among children,
// one constraint per child in registration order.
type LayoutSpec struct {
	Direction   SplitDirection
	Margin      int
	Constraints []Constraint
}

// NewLayout creates a vertical layout with no margin.
func NewLayout() LayoutSpec {
	return LayoutSpec{Direction: SplitVertical}
}

// WithDirection sets the split axis.
func (l LayoutSpec) WithDirection(d SplitDirection) LayoutSpec {
	l.Direction = d
	return l
}

// WithMargin sets the outer margin applied before splitting.
func (l LayoutSpec) WithMargin(m int) LayoutSpec {
	l.Margin = m
	return l
}

// WithConstraints sets the per-chunk constraints.
func (l LayoutSpec) WithConstraints(cs ...Constraint) LayoutSpec {
	l.Constraints = cs
	return l
}
