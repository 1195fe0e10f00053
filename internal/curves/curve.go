package curves

import (
	"sort"

	"github.com/board2go/board2go/internal/state"
	"github.com/board2go/board2go/internal/util"
)

const (
	MinPwmValue = 0
	MaxPwmValue = 255
)

// Point maps a temperature in degrees Celsius to a PWM duty
type Point struct {
	Temp int `json:"temp"`
	Pwm  int `json:"pwm"`
}

// Curve is a non-empty list of points sorted ascending by temperature.
type Curve []Point

type document struct {
	Points []Point `json:"points"`
}

func DefaultCurve() Curve {
	return Curve{
		{Temp: 40, Pwm: 100},
		{Temp: 50, Pwm: 130},
		{Temp: 60, Pwm: 160},
		{Temp: 70, Pwm: 180},
		{Temp: 80, Pwm: 200},
	}
}

// Load reads the curve at path. It never fails: missing, unreadable or empty
// documents yield DefaultCurve.
func Load(path string) Curve {
	doc, ok := state.Read(path)
	if !ok {
		return DefaultCurve()
	}
	return Parse(doc)
}

// Parse builds a Curve from a decoded {points: [...]} document.
func Parse(doc map[string]any) Curve {
	var result Curve
	rawPoints, _ := doc["points"].([]any)
	for _, rawPoint := range rawPoints {
		point, ok := parsePoint(rawPoint)
		if ok {
			result = append(result, point)
		}
	}
	if len(result) == 0 {
		return DefaultCurve()
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Temp < result[j].Temp
	})
	return result
}

func parsePoint(raw any) (Point, bool) {
	values, ok := raw.(map[string]any)
	if !ok {
		return Point{}, false
	}
	temp, pwm := 0, 0
	if rawTemp, exists := values["temp"]; exists {
		if temp, ok = state.CoerceInt(rawTemp); !ok {
			return Point{}, false
		}
	}
	if rawPwm, exists := values["pwm"]; exists {
		if pwm, ok = state.CoerceInt(rawPwm); !ok {
			return Point{}, false
		}
	}
	return Point{
		Temp: temp,
		Pwm:  util.Coerce(pwm, MinPwmValue, MaxPwmValue),
	}, true
}

// Save writes the curve as a {points: [...]} document.
func Save(path string, curve Curve) error {
	return state.Write(path, document{Points: curve})
}

// Compute evaluates the curve at the given temperature using linear
// interpolation between neighbouring points. Values outside of the curve
// are pinned to the first or last point.
func Compute(curve Curve, temp float64) int {
	if len(curve) == 0 {
		return MinPwmValue
	}
	first := curve[0]
	last := curve[len(curve)-1]
	if temp <= float64(first.Temp) {
		return first.Pwm
	}
	if temp >= float64(last.Temp) {
		return last.Pwm
	}

	for i := 0; i < len(curve)-1; i++ {
		current := curve[i]
		next := curve[i+1]
		if temp < float64(current.Temp) || temp > float64(next.Temp) {
			continue
		}
		if current.Temp == next.Temp {
			return current.Pwm
		}
		ratio := util.Ratio(temp, float64(current.Temp), float64(next.Temp))
		return int(float64(current.Pwm) + ratio*float64(next.Pwm-current.Pwm))
	}

	return last.Pwm
}
