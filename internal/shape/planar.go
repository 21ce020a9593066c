package shape

import "math"

// Circle 為圓形。
type Circle struct {
	base
	radius float64
}

// NewCircle 建立圓形；radius 須 > 0。
func NewCircle(id int64, radius float64) (*Circle, error) {
	b, err := newBase(KindCircle, id)
	if err != nil {
		return nil, err
	}
	if err := validateDimension(DimensionRadius, radius); err != nil {
		return nil, err
	}
	return &Circle{base: b, radius: radius}, nil
}

func (c *Circle) Radius() float64    { return c.radius }
func (c *Circle) Dimension() float64 { return c.radius }

// SetRadius 更新半徑；非法值不改變狀態。
func (c *Circle) SetRadius(r float64) error {
	if err := validateDimension(DimensionRadius, r); err != nil {
		return err
	}
	c.radius = r
	return nil
}

// Area = πr²
func (c *Circle) Area() float64 { return math.Pi * c.radius * c.radius }

// Perimeter = 2πr
func (c *Circle) Perimeter() float64 { return 2 * math.Pi * c.radius }

// Square 為正方形。
type Square struct {
	base
	side float64
}

// NewSquare 建立正方形；side 須 > 0。
func NewSquare(id int64, side float64) (*Square, error) {
	b, err := newBase(KindSquare, id)
	if err != nil {
		return nil, err
	}
	if err := validateDimension(DimensionSide, side); err != nil {
		return nil, err
	}
	return &Square{base: b, side: side}, nil
}

func (s *Square) Side() float64      { return s.side }
func (s *Square) Dimension() float64 { return s.side }

// SetSide 更新邊長；非法值不改變狀態。
func (s *Square) SetSide(v float64) error {
	if err := validateDimension(DimensionSide, v); err != nil {
		return err
	}
	s.side = v
	return nil
}

func (s *Square) Area() float64      { return s.side * s.side }
func (s *Square) Perimeter() float64 { return 4 * s.side }
