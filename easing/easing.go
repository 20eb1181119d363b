// Package easing is the named easing-function table shared by event-box
// distribution and animation helpers. Every function maps [0,1] onto [0,1]
// at the endpoints.
package easing

import (
	"math"
	"sort"
)

// Func eases a normalized position.
type Func func(x float64) float64

const (
	c1 = 1.70158
	c2 = c1 * 1.525
	c3 = c1 + 1
	c4 = (2 * math.Pi) / 3
	c5 = (2 * math.Pi) / 4.5
)

func outBounce(x float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case x < 1/d1:
		return n1 * x * x
	case x < 2/d1:
		x -= 1.5 / d1
		return n1*x*x + 0.75
	case x < 2.5/d1:
		x -= 2.25 / d1
		return n1*x*x + 0.9375
	default:
		x -= 2.625 / d1
		return n1*x*x + 0.984375
	}
}

var table = map[string]Func{
	"easeLinear": func(x float64) float64 { return x },
	"easeStep": func(x float64) float64 {
		if x >= 1 {
			return 1
		}
		return 0
	},
	"easeInQuad":  func(x float64) float64 { return x * x },
	"easeOutQuad": func(x float64) float64 { return 1 - (1-x)*(1-x) },
	"easeInOutQuad": func(x float64) float64 {
		if x < 0.5 {
			return 2 * x * x
		}
		return 1 - math.Pow(-2*x+2, 2)/2
	},
	"easeInCubic":  func(x float64) float64 { return x * x * x },
	"easeOutCubic": func(x float64) float64 { return 1 - math.Pow(1-x, 3) },
	"easeInOutCubic": func(x float64) float64 {
		if x < 0.5 {
			return 4 * x * x * x
		}
		return 1 - math.Pow(-2*x+2, 3)/2
	},
	"easeInQuart":  func(x float64) float64 { return x * x * x * x },
	"easeOutQuart": func(x float64) float64 { return 1 - math.Pow(1-x, 4) },
	"easeInOutQuart": func(x float64) float64 {
		if x < 0.5 {
			return 8 * x * x * x * x
		}
		return 1 - math.Pow(-2*x+2, 4)/2
	},
	"easeInQuint":  func(x float64) float64 { return x * x * x * x * x },
	"easeOutQuint": func(x float64) float64 { return 1 - math.Pow(1-x, 5) },
	"easeInOutQuint": func(x float64) float64 {
		if x < 0.5 {
			return 16 * x * x * x * x * x
		}
		return 1 - math.Pow(-2*x+2, 5)/2
	},
	"easeInSine":    func(x float64) float64 { return 1 - math.Cos(x*math.Pi/2) },
	"easeOutSine":   func(x float64) float64 { return math.Sin(x * math.Pi / 2) },
	"easeInOutSine": func(x float64) float64 { return -(math.Cos(math.Pi*x) - 1) / 2 },
	"easeInExpo": func(x float64) float64 {
		if x == 0 {
			return 0
		}
		return math.Pow(2, 10*x-10)
	},
	"easeOutExpo": func(x float64) float64 {
		if x == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*x)
	},
	"easeInOutExpo": func(x float64) float64 {
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		case x < 0.5:
			return math.Pow(2, 20*x-10) / 2
		}
		return (2 - math.Pow(2, -20*x+10)) / 2
	},
	"easeInCirc":  func(x float64) float64 { return 1 - math.Sqrt(1-x*x) },
	"easeOutCirc": func(x float64) float64 { return math.Sqrt(1 - (x-1)*(x-1)) },
	"easeInOutCirc": func(x float64) float64 {
		if x < 0.5 {
			return (1 - math.Sqrt(1-math.Pow(2*x, 2))) / 2
		}
		return (math.Sqrt(1-math.Pow(-2*x+2, 2)) + 1) / 2
	},
	"easeInBack":  func(x float64) float64 { return c3*x*x*x - c1*x*x },
	"easeOutBack": func(x float64) float64 { return 1 + c3*math.Pow(x-1, 3) + c1*math.Pow(x-1, 2) },
	"easeInOutBack": func(x float64) float64 {
		if x < 0.5 {
			return (math.Pow(2*x, 2) * ((c2+1)*2*x - c2)) / 2
		}
		return (math.Pow(2*x-2, 2)*((c2+1)*(x*2-2)+c2) + 2) / 2
	},
	"easeInElastic": func(x float64) float64 {
		if x == 0 || x == 1 {
			return x
		}
		return -math.Pow(2, 10*x-10) * math.Sin((x*10-10.75)*c4)
	},
	"easeOutElastic": func(x float64) float64 {
		if x == 0 || x == 1 {
			return x
		}
		return math.Pow(2, -10*x)*math.Sin((x*10-0.75)*c4) + 1
	},
	"easeInOutElastic": func(x float64) float64 {
		switch {
		case x == 0 || x == 1:
			return x
		case x < 0.5:
			return -(math.Pow(2, 20*x-10) * math.Sin((20*x-11.125)*c5)) / 2
		}
		return (math.Pow(2, -20*x+10)*math.Sin((20*x-11.125)*c5))/2 + 1
	},
	"easeInBounce":  func(x float64) float64 { return 1 - outBounce(1-x) },
	"easeOutBounce": outBounce,
	"easeInOutBounce": func(x float64) float64 {
		if x < 0.5 {
			return (1 - outBounce(1-2*x)) / 2
		}
		return (1 + outBounce(2*x-1)) / 2
	},
}

// Linear is the identity easing.
var Linear = table["easeLinear"]

// Get looks up an easing by name.
func Get(name string) (Func, bool) {
	f, ok := table[name]
	return f, ok
}

// Names returns every registered easing name, sorted.
func Names() []string {
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// eventBoxEasings maps the integer easing id stored in event boxes.
var eventBoxEasings = map[int]string{
	-1: "easeLinear",
	0:  "easeLinear",
	1:  "easeInQuad",
	2:  "easeOutQuad",
	3:  "easeInOutQuad",
}

// ForEventBox returns the easing for an event-box easing id; unknown ids are
// linear.
func ForEventBox(id int) Func {
	if name, ok := eventBoxEasings[id]; ok {
		return table[name]
	}
	return Linear
}
