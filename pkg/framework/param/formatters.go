package param

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/justyntemme/thuemorse/pkg/host"
)

// PercentFormatter formats percentage values
func PercentFormatter(value float64) string {
	return fmt.Sprintf("%.0f%%", value)
}

// PercentParser parses percentage strings
func PercentParser(str string) (float64, error) {
	str = strings.TrimSuffix(strings.TrimSpace(str), "%")
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// KnobFormatter shows a knob position as its raw 10-bit step followed by
// the percentage of travel, e.g. "512 (50%)".
func KnobFormatter(value float64) string {
	return fmt.Sprintf("%d (%s)", int(value+0.5), PercentFormatter(value/host.ParamMax*100))
}

// KnobParser accepts a raw step ("512") or a percentage of travel ("50%").
func KnobParser(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if strings.HasSuffix(str, "%") {
		pct, err := PercentParser(str)
		if err != nil {
			return 0, err
		}
		if pct < 0 || pct > 100 {
			return 0, fmt.Errorf("%s outside 0-100%%", str)
		}
		return pct / 100 * host.ParamMax, nil
	}

	v, err := strconv.Atoi(str)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > host.ParamMax {
		return 0, fmt.Errorf("%d outside 0-%d", v, host.ParamMax)
	}
	return float64(v), nil
}
