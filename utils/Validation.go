// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/swfavorites/swfavorites-service/exception"
)

var validate *validator.Validate
var validateOnce sync.Once

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(getJsonTag)
	})
	return validate
}

// ValidateObject reports missing required fields first, then the first malformed one.
func ValidateObject(object interface{}) error {
	err := getValidator().Struct(object)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	missingParams := make([]string, 0)
	var invalid validator.FieldError
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			missingParams = append(missingParams, fieldPath(fieldErr))
		} else if invalid == nil {
			invalid = fieldErr
		}
	}
	if len(missingParams) > 0 {
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.RequiredParamsMissing,
			Message: exception.RequiredParamsMissingMsg,
			Params:  map[string]interface{}{"params": strings.Join(missingParams, ", ")},
		}
	}
	return &exception.CustomError{
		Status:  http.StatusBadRequest,
		Code:    exception.InvalidParameterValue,
		Message: exception.InvalidParameterValueMsg,
		Params:  map[string]interface{}{"param": fieldPath(invalid), "value": fmt.Sprintf("%v", invalid.Value())},
	}
}

// fieldPath drops the top-level struct name from the json namespace.
func fieldPath(fieldErr validator.FieldError) string {
	parts := strings.SplitN(fieldErr.Namespace(), ".", 2)
	if len(parts) < 2 {
		return parts[0]
	}
	return parts[1]
}

func getJsonTag(field reflect.StructField) string {
	name := strings.Split(field.Tag.Get("json"), ",")[0]
	switch name {
	case "-", "":
		return field.Name
	default:
		return name
	}
}
