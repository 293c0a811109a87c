package synth

import (
	_ "embed"
)

//go:embed assets/pitfalls.md
var pitfallsCatalog string

//go:embed assets/checklist.md
var testingChecklist string

//go:embed assets/permissions.md
var permissionsTemplate string

//go:embed assets/setup.md
var setupProse string
