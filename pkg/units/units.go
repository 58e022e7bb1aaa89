// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package units converts between the measurement units that show up
// around thermochemical data.
//
// The thermochemical tables themselves are fixed in kelvin, joules, and
// bar; this package exists for the callers who aren't. Temperature is an
// affine conversion through kelvin, pressure and energy are pure scale
// factors through their SI anchors.
//
// Example:
//
//	f, err := units.ConvertTemperature(550, units.Kelvin, units.Fahrenheit)
package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned when a unit symbol is not recognized.
var ErrUnknownUnit = errors.New("unknown unit")

// TemperatureUnit is a supported temperature scale.
type TemperatureUnit string

const (
	Kelvin     TemperatureUnit = "K"
	Celsius    TemperatureUnit = "C"
	Fahrenheit TemperatureUnit = "F"
	Rankine    TemperatureUnit = "R"
)

// PressureUnit is a supported pressure unit.
type PressureUnit string

const (
	Pascal     PressureUnit = "Pa"
	Bar        PressureUnit = "bar"
	Atmosphere PressureUnit = "atm"
	PSI        PressureUnit = "psi"
	MmHg       PressureUnit = "mmHg"
)

// EnergyUnit is a supported energy unit.
type EnergyUnit string

const (
	Joule       EnergyUnit = "J"
	Kilojoule   EnergyUnit = "kJ"
	Calorie     EnergyUnit = "cal"
	Kilocalorie EnergyUnit = "kcal"
	BTU         EnergyUnit = "Btu"
)

// toKelvin maps each scale to the affine transform k = a*v + b.
var toKelvin = map[TemperatureUnit][2]float64{
	Kelvin:     {1, 0},
	Celsius:    {1, 273.15},
	Fahrenheit: {5.0 / 9.0, 459.67 * 5.0 / 9.0},
	Rankine:    {5.0 / 9.0, 0},
}

// pascalsPer holds the scale factor from each pressure unit to pascals.
var pascalsPer = map[PressureUnit]float64{
	Pascal:     1,
	Bar:        1e5,
	Atmosphere: 101325,
	PSI:        6894.757293168,
	MmHg:       133.322387415,
}

// joulesPer holds the scale factor from each energy unit to joules.
var joulesPer = map[EnergyUnit]float64{
	Joule:       1,
	Kilojoule:   1000,
	Calorie:     4.184,
	Kilocalorie: 4184,
	BTU:         1055.05585262,
}

// ConvertTemperature converts v from one temperature scale to another.
func ConvertTemperature(v float64, from, to TemperatureUnit) (float64, error) {
	f, ok := toKelvin[from]
	if !ok {
		return 0, fmt.Errorf("%w: temperature %q", ErrUnknownUnit, from)
	}
	t, ok := toKelvin[to]
	if !ok {
		return 0, fmt.Errorf("%w: temperature %q", ErrUnknownUnit, to)
	}
	k := f[0]*v + f[1]
	return (k - t[1]) / t[0], nil
}

// ConvertPressure converts v between pressure units.
func ConvertPressure(v float64, from, to PressureUnit) (float64, error) {
	f, ok := pascalsPer[from]
	if !ok {
		return 0, fmt.Errorf("%w: pressure %q", ErrUnknownUnit, from)
	}
	t, ok := pascalsPer[to]
	if !ok {
		return 0, fmt.Errorf("%w: pressure %q", ErrUnknownUnit, to)
	}
	return v * f / t, nil
}

// ConvertEnergy converts v between energy units.
func ConvertEnergy(v float64, from, to EnergyUnit) (float64, error) {
	f, ok := joulesPer[from]
	if !ok {
		return 0, fmt.Errorf("%w: energy %q", ErrUnknownUnit, from)
	}
	t, ok := joulesPer[to]
	if !ok {
		return 0, fmt.Errorf("%w: energy %q", ErrUnknownUnit, to)
	}
	return v * f / t, nil
}

// ParseTemperatureUnit matches a unit symbol case-insensitively against
// the supported temperature scales.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "k", "kelvin":
		return Kelvin, nil
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	case "r", "rankine":
		return Rankine, nil
	default:
		return "", fmt.Errorf("%w: temperature %q", ErrUnknownUnit, s)
	}
}
