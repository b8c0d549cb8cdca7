package engine

import (
	"math"
	"math/rand/v2"
)

type opFunc func(c *Calculator) ErrorCode

func unary(f func(x float64) (float64, ErrorCode)) opFunc {
	return func(c *Calculator) ErrorCode {
		r, ec := f(c.st.pop())
		if ec != NoError {
			return ec
		}
		c.st.push(r)
		return NoError
	}
}

func binary(f func(y, x float64) (float64, ErrorCode)) opFunc {
	return func(c *Calculator) ErrorCode {
		x := c.st.pop()
		y := c.st.pop()
		r, ec := f(y, x)
		if ec != NoError {
			return ec
		}
		c.st.push(r)
		return NoError
	}
}

func pure(f func(x float64) float64) opFunc {
	return unary(func(x float64) (float64, ErrorCode) { return f(x), NoError })
}

// angular wraps a trig function taking an angle in the configured unit.
func angular(f func(r float64) (float64, ErrorCode)) opFunc {
	return func(c *Calculator) ErrorCode {
		return unary(func(x float64) (float64, ErrorCode) { return f(c.toRadians(x)) })(c)
	}
}

// inverseAngular wraps an inverse trig function returning an angle in the
// configured unit.
func inverseAngular(f func(x float64) (float64, ErrorCode)) opFunc {
	return func(c *Calculator) ErrorCode {
		return unary(func(x float64) (float64, ErrorCode) {
			r, ec := f(x)
			return c.fromRadians(r), ec
		})(c)
	}
}

func bitwise(f func(y, x int64) int64) opFunc {
	return binary(func(y, x float64) (float64, ErrorCode) {
		return float64(f(int64(math.Trunc(y)), int64(math.Trunc(x)))), NoError
	})
}

func operations() map[string]opFunc {
	return map[string]opFunc{
		"plus":  binary(func(y, x float64) (float64, ErrorCode) { return y + x, NoError }),
		"minus": binary(func(y, x float64) (float64, ErrorCode) { return y - x, NoError }),
		"times": binary(func(y, x float64) (float64, ErrorCode) { return y * x, NoError }),
		"divide": binary(func(y, x float64) (float64, ErrorCode) {
			if x == 0 {
				return 0, DivideByZero
			}
			return y / x, NoError
		}),
		"reciprocal": unary(func(x float64) (float64, ErrorCode) {
			if x == 0 {
				return 0, DivideByZero
			}
			return 1 / x, NoError
		}),
		"power": binary(func(y, x float64) (float64, ErrorCode) { return math.Pow(y, x), NoError }),
		"xrooty": binary(func(y, x float64) (float64, ErrorCode) {
			if x == 0 {
				return 0, DivideByZero
			}
			if y < 0 {
				// odd integer roots of negatives are real
				if math.Trunc(x) == x && math.Mod(math.Abs(x), 2) == 1 {
					return -math.Pow(-y, 1/x), NoError
				}
				return 0, InvalidRoot
			}
			return math.Pow(y, 1/x), NoError
		}),
		"sqrt": unary(func(x float64) (float64, ErrorCode) {
			if x < 0 {
				return 0, InvalidRoot
			}
			return math.Sqrt(x), NoError
		}),
		"cuberoot": pure(math.Cbrt),
		"square":   pure(func(x float64) float64 { return x * x }),
		"cube":     pure(func(x float64) float64 { return x * x * x }),
		"percent": func(c *Calculator) ErrorCode {
			x := c.st.pop()
			y := c.st.peek()
			c.st.push(y * x / 100)
			return NoError
		},
		"percentchange": func(c *Calculator) ErrorCode {
			x := c.st.pop()
			y := c.st.peek()
			if y == 0 {
				return DivideByZero
			}
			c.st.push((x - y) / y * 100)
			return NoError
		},
		"remainder": binary(func(y, x float64) (float64, ErrorCode) {
			if math.Trunc(x) == 0 {
				return 0, DivideByZero
			}
			return math.Mod(math.Trunc(y), math.Trunc(x)), NoError
		}),
		"integerdivide": binary(func(y, x float64) (float64, ErrorCode) {
			if math.Trunc(x) == 0 {
				return 0, DivideByZero
			}
			return math.Trunc(math.Trunc(y) / math.Trunc(x)), NoError
		}),

		"tentox": pure(func(x float64) float64 { return math.Pow(10, x) }),
		"etox":   pure(math.Exp),
		"twotox": pure(math.Exp2),
		"log10":  logarithm(math.Log10),
		"loge":   logarithm(math.Log),
		"log2":   logarithm(math.Log2),

		"round":        pure(math.Round),
		"floor":        pure(math.Floor),
		"ceiling":      pure(math.Ceil),
		"absolute":     pure(math.Abs),
		"integerpart":  pure(math.Trunc),
		"floatingpart": pure(func(x float64) float64 { return x - math.Trunc(x) }),

		"drop":     func(c *Calculator) ErrorCode { c.st.pop(); return NoError },
		"swap":     func(c *Calculator) ErrorCode { c.st.swap(); return NoError },
		"rollUp":   func(c *Calculator) ErrorCode { c.st.rollUp(); return NoError },
		"rollDown": func(c *Calculator) ErrorCode { c.st.rollDown(); return NoError },
		"pi":       func(c *Calculator) ErrorCode { c.st.push(math.Pi); return NoError },
		"random":   func(c *Calculator) ErrorCode { c.st.push(rand.Float64()); return NoError },

		"sin": angular(func(r float64) (float64, ErrorCode) { return math.Sin(r), NoError }),
		"cos": angular(func(r float64) (float64, ErrorCode) { return math.Cos(r), NoError }),
		"tan": angular(func(r float64) (float64, ErrorCode) {
			if math.Abs(math.Cos(r)) < 1e-15 {
				return 0, InvalidTangent
			}
			return math.Tan(r), NoError
		}),
		"inversesin": inverseAngular(func(x float64) (float64, ErrorCode) {
			if x < -1 || x > 1 {
				return 0, InvalidInverseTrig
			}
			return math.Asin(x), NoError
		}),
		"inversecos": inverseAngular(func(x float64) (float64, ErrorCode) {
			if x < -1 || x > 1 {
				return 0, InvalidInverseTrig
			}
			return math.Acos(x), NoError
		}),
		"inversetan": inverseAngular(func(x float64) (float64, ErrorCode) { return math.Atan(x), NoError }),
		"inversetan2": func(c *Calculator) ErrorCode {
			x := c.st.pop()
			y := c.st.pop()
			c.st.push(c.fromRadians(math.Atan2(y, x)))
			return NoError
		},
		"sinh": pure(math.Sinh),
		"cosh": pure(math.Cosh),
		"tanh": pure(math.Tanh),
		"inversesinh": pure(math.Asinh),
		"inversecosh": unary(func(x float64) (float64, ErrorCode) {
			if x < 1 {
				return 0, InvalidInverseHyperbolicTrig
			}
			return math.Acosh(x), NoError
		}),
		"inversetanh": unary(func(x float64) (float64, ErrorCode) {
			if x <= -1 || x >= 1 {
				return 0, InvalidInverseHyperbolicTrig
			}
			return math.Atanh(x), NoError
		}),
		"inversetanh2": binary(func(y, x float64) (float64, ErrorCode) {
			if x == 0 {
				return 0, DivideByZero
			}
			r := y / x
			if r <= -1 || r >= 1 {
				return 0, InvalidInverseHyperbolicTrig
			}
			return math.Atanh(r), NoError
		}),

		"bitwiseand": bitwise(func(y, x int64) int64 { return y & x }),
		"bitwiseor":  bitwise(func(y, x int64) int64 { return y | x }),
		"bitwisexor": bitwise(func(y, x int64) int64 { return y ^ x }),
		"bitwisenot": pure(func(x float64) float64 {
			return float64(^uint32(int64(math.Trunc(x))))
		}),
	}
}

func logarithm(f func(float64) float64) opFunc {
	return unary(func(x float64) (float64, ErrorCode) {
		if x <= 0 {
			return 0, InvalidLog
		}
		return f(x), NoError
	})
}

// siPrefixes are the multipliers behind the SI-<prefix> commands.
var siPrefixes = map[string]float64{
	"Yotta": 1e24, "Zetta": 1e21, "Exa": 1e18, "Peta": 1e15,
	"Tera": 1e12, "Giga": 1e9, "Mega": 1e6, "Kilo": 1e3,
	"Milli": 1e-3, "Micro": 1e-6, "Nano": 1e-9, "Pico": 1e-12,
	"Femto": 1e-15, "Atto": 1e-18, "Zepto": 1e-21, "Yocto": 1e-24,
	"Kibi": 1 << 10, "Mebi": 1 << 20, "Gibi": 1 << 30,
	"Tebi": 1 << 40, "Pebi": 1 << 50, "Exbi": 1 << 60,
}
