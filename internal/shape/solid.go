package shape

import "math"

// Cube 為正立方體。
type Cube struct {
	base
	side float64
}

// NewCube 建立立方體；side 須 > 0。
func NewCube(id int64, side float64) (*Cube, error) {
	b, err := newBase(KindCube, id)
	if err != nil {
		return nil, err
	}
	if err := validateDimension(DimensionSide, side); err != nil {
		return nil, err
	}
	return &Cube{base: b, side: side}, nil
}

func (c *Cube) Side() float64      { return c.side }
func (c *Cube) Dimension() float64 { return c.side }

func (c *Cube) SetSide(v float64) error {
	if err := validateDimension(DimensionSide, v); err != nil {
		return err
	}
	c.side = v
	return nil
}

func (c *Cube) Volume() float64      { return c.side * c.side * c.side }
func (c *Cube) SurfaceArea() float64 { return 6 * c.side * c.side }

// Sphere 為球體。
type Sphere struct {
	base
	radius float64
}

// NewSphere 建立球體；radius 須 > 0。
func NewSphere(id int64, radius float64) (*Sphere, error) {
	b, err := newBase(KindSphere, id)
	if err != nil {
		return nil, err
	}
	if err := validateDimension(DimensionRadius, radius); err != nil {
		return nil, err
	}
	return &Sphere{base: b, radius: radius}, nil
}

func (s *Sphere) Radius() float64    { return s.radius }
func (s *Sphere) Dimension() float64 { return s.radius }

func (s *Sphere) SetRadius(r float64) error {
	if err := validateDimension(DimensionRadius, r); err != nil {
		return err
	}
	s.radius = r
	return nil
}

// Volume = 4/3·π·r³
func (s *Sphere) Volume() float64 { return 4.0 / 3.0 * math.Pi * s.radius * s.radius * s.radius }

// SurfaceArea = 4πr²
func (s *Sphere) SurfaceArea() float64 { return 4 * math.Pi * s.radius * s.radius }
