// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package janaf

import (
	"fmt"
	"strings"
)

// PhaseCode identifies the physical state variant of a substance in the
// JANAF index. The index uses a closed set of fourteen codes.
type PhaseCode string

const (
	// PhaseCrystal is a crystalline solid.
	PhaseCrystal PhaseCode = "cr"

	// PhaseLiquid is a liquid.
	PhaseLiquid PhaseCode = "l"

	// PhaseCrystalLiquid is a combined crystal/liquid table spanning the
	// melting transition.
	PhaseCrystalLiquid PhaseCode = "cr,l"

	// PhaseGas is an ideal gas.
	PhaseGas PhaseCode = "g"

	// PhaseReference is the reference state of an element.
	PhaseReference PhaseCode = "ref"

	// PhaseCondensed is a generic condensed phase.
	PhaseCondensed PhaseCode = "cd"

	// PhaseFluid is a fluid phase.
	PhaseFluid PhaseCode = "fl"

	// PhaseAmorphous is an amorphous solid.
	PhaseAmorphous PhaseCode = "am"

	// PhaseVitreous is a vitreous (glassy) solid.
	PhaseVitreous PhaseCode = "vit"

	// PhaseMonoclinic is a monoclinic crystal variant.
	PhaseMonoclinic PhaseCode = "mon"

	// PhasePolymorphic is a polymorphic crystal variant.
	PhasePolymorphic PhaseCode = "pol"

	// PhaseSolution is a solution.
	PhaseSolution PhaseCode = "sln"

	// PhaseAqueous is an aqueous solution.
	PhaseAqueous PhaseCode = "aq"

	// PhaseSaturated is a saturated species.
	PhaseSaturated PhaseCode = "sat"
)

// validPhaseCodes is the closed enumeration accepted by ParsePhaseCode,
// in index order.
var validPhaseCodes = []PhaseCode{
	PhaseCrystal, PhaseLiquid, PhaseCrystalLiquid, PhaseGas, PhaseReference,
	PhaseCondensed, PhaseFluid, PhaseAmorphous, PhaseVitreous, PhaseMonoclinic,
	PhasePolymorphic, PhaseSolution, PhaseAqueous, PhaseSaturated,
}

// ParsePhaseCode normalizes s to lower case and validates it against the
// fourteen JANAF phase codes. Unrecognized codes fail with ErrInvalidPhase;
// the message lists the valid codes.
func ParsePhaseCode(s string) (PhaseCode, error) {
	code := PhaseCode(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range validPhaseCodes {
		if code == v {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid codes are %s)", ErrInvalidPhase, s, phaseCodeList())
}

func phaseCodeList() string {
	parts := make([]string, len(validPhaseCodes))
	for i, v := range validPhaseCodes {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
