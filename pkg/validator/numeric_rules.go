package validator

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be at least %{min}",
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be at most %{max}",
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// LessThanNum validates that value is strictly less than other.
func LessThanNum[T Numeric](field string, value T, other T) Rule {
	return Rule{
		Check: func() bool {
			return value < other
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be less than %{other}",
			TranslationKey: "validation.less_than",
			TranslationValues: map[string]any{
				"field": field,
				"other": other,
			},
		},
	}
}

// GreaterThanNum validates that value is strictly greater than other.
func GreaterThanNum[T Numeric](field string, value T, other T) Rule {
	return Rule{
		Check: func() bool {
			return value > other
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be greater than %{other}",
			TranslationKey: "validation.greater_than",
			TranslationValues: map[string]any{
				"field": field,
				"other": other,
			},
		},
	}
}
