package validator

import (
	"encoding/json"
	"fmt"
	val "github.com/go-playground/validator/v10"
	"io"
	"lodge/config"
	"lodge/shared/base64"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	if file, ok := field.Field().Interface().(multipart.FileHeader); ok {
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	} else if str, ok := field.Field().Interface().(string); ok {
		contentType = base64.GetContentType(str)

		if contentType == "" {
			return false
		}
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	fileSize := 0
	if file, ok := field.Field().Interface().(multipart.FileHeader); ok {
		fileSize = int(file.Size)
	} else if str, ok := field.Field().Interface().(string); ok {
		fileSize = len(str)
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

// registerStayRangeValidation checks that a checkIn/checkOut pair on the parent
// struct forms a valid stay: both dates parse and check-out falls strictly
// after check-in. The tag parameter names the check-in field. An absent
// check-in passes; a partial update may change the check-out alone, and the
// pair is then validated against the held dates.
func registerStayRangeValidation(field val.FieldLevel) bool {
	checkOut, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	parent := field.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}

	checkInField := parent.FieldByName(field.Param())
	if !checkInField.IsValid() {
		return false
	}

	if checkInField.Kind() == reflect.Ptr {
		if checkInField.IsNil() {
			return true
		}

		checkInField = checkInField.Elem()
	}

	checkIn, ok := checkInField.Interface().(string)
	if !ok {
		return false
	}

	checkInDate, err := time.Parse(constant.DateOnlyFormat, checkIn)
	if err != nil {
		return false
	}

	checkOutDate, err := time.Parse(constant.DateOnlyFormat, checkOut)
	if err != nil {
		return false
	}

	return checkOutDate.After(checkInDate)
}

func registerRatingValidation(field val.FieldLevel) bool {
	rating := field.Field().Int()

	return rating >= 1 && rating <= 5
}

func init() {
	cfg := config.Get()

	validate = val.New(val.WithRequiredStructEnabled())
	err := validate.RegisterValidation("lodge", func(fl val.FieldLevel) bool {
		method := fl.Field().MethodByName("Validate")
		if method.IsValid() {
			result := method.Call([]reflect.Value{reflect.ValueOf(cfg)})

			return result[0].Interface() == nil
		}

		return false
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("stayrange", registerStayRangeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("rating", registerRatingValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
