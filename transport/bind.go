package transport

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/muhammadheryan/car-market/constant"
	cerr "github.com/muhammadheryan/car-market/utils/errors"
	validatorx "github.com/muhammadheryan/car-market/utils/validator"
)

// maxBodyBytes caps non-upload request bodies.
const maxBodyBytes = 1 << 20

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("form")
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	return d
}

// decodeRequest fills dst from a JSON body, or from an urlencoded/multipart
// form for the legacy HTML forms, then validates it.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return cerr.SetCustomError(constant.ErrInvalidRequest)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return cerr.SetCustomError(constant.ErrInvalidRequest)
		}
		if err := formDecoder.Decode(dst, r.MultipartForm.Value); err != nil {
			return cerr.SetCustomError(constant.ErrInvalidRequest)
		}
	default:
		if err := r.ParseForm(); err != nil {
			return cerr.SetCustomError(constant.ErrInvalidRequest)
		}
		if err := formDecoder.Decode(dst, r.PostForm); err != nil {
			return cerr.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	if err := validatorx.ValidateStruct(dst); err != nil {
		return cerr.SetCustomErrorWithDetail(constant.ErrInvalidRequest, validatorx.Describe(err))
	}
	return nil
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, cerr.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}
