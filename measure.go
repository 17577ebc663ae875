package mathml

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var measure = regexp.MustCompile("^(-?[0-9]*(?:\\.[0-9]+)?)([a-z]*)$")

// Measure parses measurement value, a number and units, for example: 1.5em, -3pt, .25
func Measure(raw string) (float32, string, error) {
	match := measure.FindStringSubmatch(strings.TrimSpace(raw))
	if len(match) == 0 || match[1] == "" || match[1] == "-" {
		return 0, "", errors.New("unable to parse measurement")
	}

	number, err := strconv.ParseFloat(match[1], 32)
	if err != nil {
		return 0, "", err
	}

	return float32(number), match[2], nil
}

// ToEm converts value to em, value without unit is considered to be in em already.
func ToEm(value float32, unit string) (float32, error) {
	switch unit {
	case "", "em":
		return value, nil
	case "mu":
		return value / 18, nil
	case "ex":
		return value * 0.43056, nil
	case "pt":
		return value / 10, nil
	case "px":
		return value / 16, nil
	case "mm":
		return value * 72.27 / 25.4 / 10, nil
	case "cm":
		return value * 72.27 / 2.54 / 10, nil
	case "in":
		return value * 7.227, nil
	default:
		return 0, fmt.Errorf("measurement unit %#v is not supported", unit)
	}
}

// ParseSpace builds a space node from a measurement like 0.5em or 3mu.
func ParseSpace(raw string) (Space, error) {
	n, u, err := Measure(raw)
	if err != nil {
		return Space{}, err
	}

	width, err := ToEm(n, u)
	if err != nil {
		return Space{}, err
	}

	return Space{Width: width}, nil
}
