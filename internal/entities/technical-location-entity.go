package entities

import "github.com/aarondl/null/v8"

// TechnicalLocation is a node of the self-referential location tree. The root
// is the only row with a NULL parent; everything else hangs off an existing
// code. Codes are derived as "<parent>-<suffix>" on creation.
type TechnicalLocation struct {
	TechnicalCode       string      `json:"technical_code"`
	Name                string      `json:"name"`
	TypeID              int         `json:"type_id"`
	ParentTechnicalCode null.String `json:"parent_technical_code"`
}
