// File: bind.go
// Title: Struct Binding
// Description: Binds a configuration section onto a struct using `config`
//              field tags, honouring environment overrides per field.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation as part of validation.go
// - 2026-10-15 v0.2.0: Split out, environment overrides per field

package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/mCLI/foundation/core/error"
)

// BindToStruct binds configuration values under keyPrefix to the struct
// target points to. Fields are matched by their `config` tag or their
// lower-cased name; `config:"-"` skips a field and `validate:"required"`
// makes a missing value an error.
func (c *Config) BindToStruct(keyPrefix string, target interface{}) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.Elem().Kind() != reflect.Struct {
		return mdwerror.New("target must be a pointer to struct").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.BindToStruct")
	}

	section := c.data
	if keyPrefix != "" {
		value := c.getValue(keyPrefix)
		data, ok := value.(map[string]interface{})
		switch {
		case ok:
			section = data
		case value == nil:
			section = map[string]interface{}{}
		default:
			return mdwerror.New(fmt.Sprintf("configuration key '%s' is not a section", keyPrefix)).
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.BindToStruct").
				WithDetail("keyPrefix", keyPrefix)
		}
	}

	targetStruct := targetValue.Elem()
	targetType := targetStruct.Type()

	for i := 0; i < targetStruct.NumField(); i++ {
		field := targetStruct.Field(i)
		fieldType := targetType.Field(i)
		if !field.CanSet() {
			continue
		}

		configKey := fieldType.Tag.Get("config")
		if configKey == "" {
			configKey = strings.ToLower(fieldType.Name)
		}
		if configKey == "-" {
			continue
		}

		fullKey := configKey
		if keyPrefix != "" {
			fullKey = keyPrefix + "." + configKey
		}

		var configValue interface{}
		if envValue, ok := c.getEnvValue(fullKey); ok {
			configValue = envValue
		} else {
			configValue = section[configKey]
		}

		if configValue == nil {
			if strings.Contains(fieldType.Tag.Get("validate"), "required") {
				return mdwerror.New(fmt.Sprintf("required field '%s' not found in configuration", fullKey)).
					WithCode(mdwerror.CodeConfigError).
					WithOperation("config.BindToStruct").
					WithDetail("configKey", fullKey)
			}
			continue
		}

		if err := setFieldValue(field, configValue); err != nil {
			return mdwerror.Wrap(err, fmt.Sprintf("error setting field '%s'", fieldType.Name)).
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.BindToStruct").
				WithDetail("fieldName", fieldType.Name)
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, configValue interface{}) error {
	switch field.Kind() {
	case reflect.String:
		if str, ok := configValue.(string); ok {
			field.SetString(str)
		} else {
			field.SetString(fmt.Sprintf("%v", configValue))
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var intVal int64
		switch v := configValue.(type) {
		case int:
			intVal = int64(v)
		case int64:
			intVal = v
		case float64:
			intVal = int64(v)
		case string:
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("cannot convert '%v' to integer", v)
			}
			intVal = parsed
		default:
			return fmt.Errorf("cannot convert '%v' to integer", v)
		}
		field.SetInt(intVal)

	case reflect.Bool:
		switch v := configValue.(type) {
		case bool:
			field.SetBool(v)
		case string:
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("cannot convert '%v' to boolean", v)
			}
			field.SetBool(parsed)
		default:
			return fmt.Errorf("cannot convert '%v' to boolean", v)
		}

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type: %s", field.Type())
		}
		var stringSlice []string
		switch v := configValue.(type) {
		case []string:
			stringSlice = v
		case []interface{}:
			stringSlice = make([]string, len(v))
			for i, item := range v {
				stringSlice[i] = fmt.Sprintf("%v", item)
			}
		case string:
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					stringSlice = append(stringSlice, part)
				}
			}
		default:
			return fmt.Errorf("cannot convert '%v' to []string", v)
		}
		field.Set(reflect.ValueOf(stringSlice))

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}
