// Package docmodel is a small, host-neutral documentation model:
// enough structure to describe a command's category, summary,
// parameters, and examples without tying the description to any one
// rendering format (plain text, markdown, man page).
//
// Grounded on the teacher's internal/docmodel/doc.go (the same
// Category/Summary/Parameters/Examples shape), adapted to document a
// resolver's Command entries instead of Rebol native functions, and
// fixing the original's Validate using a rune conversion instead of a
// decimal index in its parameter-name error message.
package docmodel

import "strconv"

// ParamDoc describes one parameter of a documented command.
type ParamDoc struct {
	Name        string
	Type        string
	Description string
	Optional    bool
}

// CommandDoc documents a single command exposed to a script.
type CommandDoc struct {
	Category    string
	Summary     string
	Description string
	Parameters  []ParamDoc
	Returns     string
	Examples    []string
	SeeAlso     []string
}

// NewCommandDoc is a constructor convenience over the struct literal.
func NewCommandDoc(category, summary, description, returns string, params []ParamDoc, examples, seeAlso []string) *CommandDoc {
	return &CommandDoc{
		Category:    category,
		Summary:     summary,
		Description: description,
		Parameters:  params,
		Returns:     returns,
		Examples:    examples,
		SeeAlso:     seeAlso,
	}
}

// Validate reports the first way in which doc is incomplete for name,
// or "" if it is well-formed.
func (d *CommandDoc) Validate(name string) string {
	if d.Category == "" {
		return name + ": missing category"
	}
	if d.Summary == "" {
		return name + ": missing summary"
	}
	for i, param := range d.Parameters {
		if param.Name == "" {
			return name + ": parameter " + strconv.Itoa(i) + " missing name"
		}
		if param.Type == "" {
			return name + ": parameter '" + param.Name + "' missing type"
		}
	}
	return ""
}

// HasDoc reports whether doc carries at least a summary.
func (d *CommandDoc) HasDoc() bool {
	return d != nil && d.Summary != ""
}
