package transport

import (
	"errors"
	"net/http"

	"github.com/muhammadheryan/car-market/constant"
	"github.com/muhammadheryan/car-market/model"
	cerr "github.com/muhammadheryan/car-market/utils/errors"
)

// CreateListing handler
// @Summary Create a sale
// @Description Multipart form with the vehicle fields and up to 50 files in "images"
// @Tags Listing
// @Accept multipart/form-data
// @Produce json
// @Param vehicule formData string true "Vehicle"
// @Param immat formData string true "Registration"
// @Param serie formData string true "Serial number"
// @Param kilometrage formData int true "Mileage"
// @Param annee formData string true "Year"
// @Param energie formData string true "Fuel"
// @Param puissance formData int true "Power"
// @Param ville formData string true "City"
// @Param code formData int true "Postal code"
// @Param description formData string false "Description"
// @Param prix formData number true "Price"
// @Param images formData file true "Images"
// @Success 201 {object} model.CreateListingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /addSales [post]
func (s *RestHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	if s.config.Upload.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.config.Upload.MaxBytes)
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			writeError(w, cerr.SetCustomError(constant.ErrNoFilesProvided))
			return
		}
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	defer r.MultipartForm.RemoveAll()

	var req model.CreateListingRequest
	if err := formDecoder.Decode(&req, r.MultipartForm.Value); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.Files = r.MultipartForm.File[constant.ImagesField]

	res, err := s.ListingApp.CreateListing(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListListings handler
// @Summary List sales
// @Tags Listing
// @Produce json
// @Success 200 {array} model.ListingEntity
// @Router /allsales [get]
func (s *RestHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	res, err := s.ListingApp.ListListings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetListing handler
// @Summary Get a sale
// @Tags Listing
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} model.ListingEntity
// @Failure 404 {object} ErrorResponse
// @Router /sale/{id} [get]
func (s *RestHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ListingApp.GetListing(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListMyListings handler
// @Summary List own sales
// @Tags Listing
// @Produce json
// @Success 200 {array} model.ListingEntity
// @Failure 400 {object} ErrorResponse
// @Router /api/annonces [get]
func (s *RestHandler) ListMyListings(w http.ResponseWriter, r *http.Request) {
	res, err := s.ListingApp.ListMyListings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SearchListings handler
// @Summary Search sales by vehicle
// @Tags Listing
// @Produce json
// @Param query query string false "Case-insensitive substring of the vehicle"
// @Success 200 {array} model.ListingEntity
// @Router /api/search [get]
func (s *RestHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	res, err := s.ListingApp.SearchListings(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteListing handler
// @Summary Delete a sale
// @Tags Listing
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sale/{id} [delete]
func (s *RestHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ListingApp.DeleteListing(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "sale deleted"})
}

// PurgeImages handler
// @Summary Delete stored images
// @Description Internal endpoint used by the image purge worker
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.PurgeImagesRequest true "Image keys"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Router /internal/v1/images/purge [post]
func (s *RestHandler) PurgeImages(w http.ResponseWriter, r *http.Request) {
	var req model.PurgeImagesRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.ListingApp.PurgeImages(r.Context(), req.Keys); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "images purged"})
}
