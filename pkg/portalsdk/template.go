package portalsdk

import "strings"

// RenderTemplate personalizes a message template for one recipient. The
// tokens {{name}}, {{property}}, {{budget}} and {{phone}} are replaced with
// the recipient's fields. An empty property falls back to "our property" and
// an empty budget to "your budget" so the message still reads naturally.
func RenderTemplate(template string, r Recipient) string {
	property := r.Property
	if property == "" {
		property = "our property"
	}
	budget := r.Budget
	if budget == "" {
		budget = "your budget"
	}

	return strings.NewReplacer(
		"{{name}}", r.Name,
		"{{property}}", property,
		"{{budget}}", budget,
		"{{phone}}", r.Phone,
	).Replace(template)
}
