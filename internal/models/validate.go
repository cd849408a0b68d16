package models

import "github.com/go-playground/validator/v10"

// Shared validator instance for all models. validator caches struct metadata,
// so a single instance is the intended usage.
var validate = validator.New()
