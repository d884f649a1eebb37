package script

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/plotterkit/plotcut/pkg/design"
	"github.com/plotterkit/plotcut/pkg/filter"
)

// builder accumulates the segments a script emits.
type builder struct {
	design design.Design
}

func (b *builder) add(segs ...design.Segment) {
	b.design = append(b.design, segs...)
}

// registerBuiltins installs the design DSL into a fresh environment. All
// builtins close over the same builder.
func registerBuiltins(env *zygo.Zlisp, b *builder) {
	// (line x1 y1 x2 y2) draws a single segment.
	env.AddFunction("line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		v, err := toFloats(args, 4)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("line: %w", err)
		}
		b.add(design.Seg(v[0], v[1], v[2], v[3]))
		return zygo.SexpNull, nil
	})

	// (rect x y w h) draws a closed axis-aligned rectangle.
	env.AddFunction("rect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		v, err := toFloats(args, 4)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rect: %w", err)
		}
		x, y, w, h := v[0], v[1], v[2], v[3]
		b.add(
			design.Seg(x, y, x+w, y),
			design.Seg(x+w, y, x+w, y+h),
			design.Seg(x+w, y+h, x, y+h),
			design.Seg(x, y+h, x, y),
		)
		return zygo.SexpNull, nil
	})

	// (polygon x1 y1 x2 y2 ...) draws a closed polygon through the
	// listed vertices.
	env.AddFunction("polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 6 || len(args)%2 != 0 {
			return zygo.SexpNull, fmt.Errorf("polygon: want at least three x y vertex pairs")
		}
		v, err := toFloats(args, len(args))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		n := len(v) / 2
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			b.add(design.Seg(v[2*i], v[2*i+1], v[2*j], v[2*j+1]))
		}
		return zygo.SexpNull, nil
	})

	// (regmarks w h) draws the three registration fiducials for a region
	// of the given size: the 5x5 square at the top-left and the two
	// 20 unit L lines at the bottom-left and top-right.
	env.AddFunction("regmarks", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		v, err := toFloats(args, 2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("regmarks: %w", err)
		}
		w, h := v[0], v[1]
		b.add(
			// top-left square
			design.Seg(0, 0, 5, 0),
			design.Seg(5, 0, 5, 5),
			design.Seg(5, 5, 0, 5),
			design.Seg(0, 5, 0, 0),
			// bottom-left L
			design.Seg(0, h-20, 0, h),
			design.Seg(0, h, 20, h),
			// top-right L
			design.Seg(w-20, 0, w, 0),
			design.Seg(w, 0, w, 20),
		)
		return zygo.SexpNull, nil
	})

	// (translate dx dy) shifts everything drawn so far.
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		v, err := toFloats(args, 2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		b.design = filter.Offset(b.design, design.Pt(-v[0], -v[1]))
		return zygo.SexpNull, nil
	})
}

func toFloats(args []zygo.Sexp, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("want %d numeric arguments, got %d", want, len(args))
	}
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := toFloat(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func toFloat(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected a number, got %s", s.SexpString(nil))
}
