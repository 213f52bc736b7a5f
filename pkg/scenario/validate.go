package scenario

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fabric-jumpstart/jumpgen/pkg/data"
)

// Violation is one contract failure for one descriptor file. Violations
// are collected across the whole collection; a broken file never stops the
// checks on its neighbours.
type Violation struct {
	File    string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.File, v.Message)
}

// requiredBaseFields are the top-level keys every descriptor must carry.
var requiredBaseFields = []string{
	"id",
	"logical_id",
	"name",
	"description",
	"date_added",
	"include_in_listing",
	"workload_tags",
	"scenario_tags",
	"type",
	"source",
	"items_in_scope",
	"entry_point",
	"owner_email",
	"minutes_to_deploy",
	"minutes_to_complete_jumpstart",
}

// Validate runs the full contract pass over loaded descriptors: required
// fields, runtime types, enum membership, logical_id/filename consistency,
// description length for listed scenarios, the source block and the
// allowed-field drift checks. Pure, no file system access.
func Validate(files []File) []Violation {
	var violations []Violation
	report := func(f File, format string, args ...interface{}) {
		violations = append(violations, Violation{File: f.Name, Message: fmt.Sprintf(format, args...)})
	}

	for _, f := range files {
		for _, field := range requiredBaseFields {
			if _, ok := f.Raw[field]; !ok {
				report(f, "missing required field `%s`", field)
			}
		}

		checkString(&violations, f, "logical_id")
		checkString(&violations, f, "name")
		checkString(&violations, f, "description")
		checkString(&violations, f, "date_added")
		checkBool(&violations, f, "include_in_listing")
		checkStringList(&violations, f, "workload_tags")
		checkStringList(&violations, f, "scenario_tags")
		checkStringList(&violations, f, "items_in_scope")
		checkInt(&violations, f, "id")
		checkNumber(&violations, f, "minutes_to_deploy")
		checkNumber(&violations, f, "minutes_to_complete_jumpstart")
		checkEnum(&violations, f, "type", data.ScenarioTypes)
		checkEnum(&violations, f, "difficulty", data.Difficulties)

		if f.Scenario.LogicalID != f.LogicalID() {
			report(f, "logical_id `%s` does not match filename, expected `%s`", f.Scenario.LogicalID, f.LogicalID())
		}

		if f.Scenario.IncludeInListing && len(f.Scenario.Description) <= 10 {
			report(f, "listed scenario needs a description longer than 10 characters")
		}

		source, ok := f.Raw["source"].(map[interface{}]interface{})
		if !ok {
			if _, present := f.Raw["source"]; present {
				report(f, "field `source` must be a mapping")
			}
		} else {
			for _, field := range []string{"workspace_path", "preview_image_path"} {
				if _, ok := source[field]; !ok {
					report(f, "source block is missing required field `%s`", field)
				}
			}
			if unknown := unknownKeys(source, data.AllowedSourceFields()); len(unknown) > 0 {
				report(f, "source contains fields not defined in any schema: %s. "+
					"Add them to ScenarioSource in pkg/data/scenario.go and to JumpstartSource in the registry's Pydantic model",
					strings.Join(unknown, ", "))
			}
		}

		if unknown := unknownKeys(f.Raw, data.AllowedScenarioFields()); len(unknown) > 0 {
			report(f, "contains fields not defined in any schema: %s. "+
				"Add them to Scenario in pkg/data/scenario.go and to the Jumpstart Pydantic model in the registry",
				strings.Join(unknown, ", "))
		}
	}

	return violations
}

func unknownKeys(raw map[interface{}]interface{}, allowed map[string]bool) []string {
	var unknown []string
	for key := range raw {
		name, ok := key.(string)
		if !ok {
			name = fmt.Sprintf("%v", key)
		}
		if !allowed[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func checkString(violations *[]Violation, f File, field string) {
	value, ok := f.Raw[field]
	if !ok {
		return
	}
	if _, isString := value.(string); !isString {
		*violations = append(*violations, Violation{File: f.Name, Message: fmt.Sprintf("field `%s` must be a string", field)})
	}
}

func checkBool(violations *[]Violation, f File, field string) {
	value, ok := f.Raw[field]
	if !ok {
		return
	}
	if _, isBool := value.(bool); !isBool {
		*violations = append(*violations, Violation{File: f.Name, Message: fmt.Sprintf("field `%s` must be a boolean", field)})
	}
}

func checkInt(violations *[]Violation, f File, field string) {
	value, ok := f.Raw[field]
	if !ok {
		return
	}
	if _, isInt := value.(int); !isInt {
		*violations = append(*violations, Violation{File: f.Name, Message: fmt.Sprintf("field `%s` must be an integer", field)})
	}
}

func checkNumber(violations *[]Violation, f File, field string) {
	value, ok := f.Raw[field]
	if !ok {
		return
	}
	var number float64
	switch v := value.(type) {
	case int:
		number = float64(v)
	case float64:
		number = v
	default:
		*violations = append(*violations, Violation{File: f.Name, Message: fmt.Sprintf("field `%s` must be a number", field)})
		return
	}
	if number < 0 {
		*violations = append(*violations, Violation{File: f.Name, Message: fmt.Sprintf("field `%s` must not be negative", field)})
	}
}

func checkStringList(violations *[]Violation, f File, field string) {
	value, ok := f.Raw[field]
	if !ok {
		return
	}
	list, isList := value.([]interface{})
	if !isList {
		*violations = append(*violations, Violation{File: f.Name, Message: fmt.Sprintf("field `%s` must be a list of strings", field)})
		return
	}
	for _, item := range list {
		if _, isString := item.(string); !isString {
			*violations = append(*violations, Violation{File: f.Name, Message: fmt.Sprintf("field `%s` must only contain strings", field)})
			return
		}
	}
}

func checkEnum(violations *[]Violation, f File, field string, allowed []string) {
	value, ok := f.Raw[field].(string)
	if !ok {
		*violations = append(*violations, Violation{File: f.Name, Message: fmt.Sprintf("field `%s` must be one of %s", field, strings.Join(allowed, ", "))})
		return
	}
	for _, candidate := range allowed {
		if value == candidate {
			return
		}
	}
	*violations = append(*violations, Violation{File: f.Name, Message: fmt.Sprintf("field `%s` has value `%s`, must be one of %s", field, value, strings.Join(allowed, ", "))})
}
