package handlers

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/httperr"
)

var validate = validator.New()

func init() {
	// Report fields by their JSON names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindAndValidate binds the JSON body and runs validator tags. On failure it
// writes the 400 response and returns false.
func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, "invalid_json", "Request body must be valid JSON.")
		return false
	}
	return validateStruct(c, req)
}

func validateStruct(c *gin.Context, req any) bool {
	err := validate.Struct(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return false
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	httperr.Invalid(c, fields)
	return false
}

// uuidParam parses a path parameter. Malformed ids are answered as 404
// since no entity can have them.
func uuidParam(c *gin.Context, name, notFoundCode, notFoundMessage string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.NotFound(c, notFoundCode, notFoundMessage)
		return uuid.Nil, false
	}
	return id, true
}

// readUpload reads a multipart file. A missing file yields nil data and no
// error so the use case can report it; files over limit are cut at limit+1
// bytes so size checks still trip.
func readUpload(c *gin.Context, field string, limit int64) (data []byte, filename string, err error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, "", nil
		}
		return nil, "", err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err = io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, "", err
	}
	return data, fh.Filename, nil
}
