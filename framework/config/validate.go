package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ── Property validation ──────────────────────────────────────────────────────

// Errors holds validation failures keyed by property name.
type Errors struct {
	Bag map[string][]string
}

func (e *Errors) add(field, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[field] = append(e.Bag[field], msg)
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return len(e.Bag) > 0 }

// First returns the first error for a field.
func (e *Errors) First(field string) string {
	if msgs, ok := e.Bag[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (e Errors) String() string {
	fields := make([]string, 0, len(e.Bag))
	for f := range e.Bag {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, strings.Join(e.Bag[f], "; "))
	}
	return strings.Join(parts, "; ")
}

// Rules is a map of property → pipe-separated rule string.
// e.g. Rules{"manage.port": "required|numeric"}
type Rules map[string]string

// Validate checks a flat map of property values against rules. Supported
// rules: required, numeric, in:a,b,c.
func Validate(values map[string]string, rules Rules) Errors {
	var errs Errors
	for field, ruleStr := range rules {
		value := values[field]
		for _, rule := range strings.Split(ruleStr, "|") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}
			name, param, _ := strings.Cut(rule, ":")
			if !applyRule(&errs, field, value, name, param) {
				break // stop on first failure per field
			}
		}
	}
	return errs
}

// applyRule returns true if the rule passes.
func applyRule(errs *Errors, field, value, rule, param string) bool {
	switch rule {
	case "required":
		if strings.TrimSpace(value) == "" {
			errs.add(field, fmt.Sprintf("the %s property is required", field))
			return false
		}

	case "numeric":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			errs.add(field, fmt.Sprintf("the %s property must be a number, got %q", field, value))
			return false
		}

	case "in":
		for _, a := range strings.Split(param, ",") {
			if strings.TrimSpace(a) == value {
				return true
			}
		}
		errs.add(field, fmt.Sprintf("the %s property must be one of [%s], got %q", field, param, value))
		return false
	}
	return true
}
