package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lintang-b-s/nearest-pointset/pkg/datastructure"
	helper "github.com/lintang-b-s/nearest-pointset/pkg/http/http-router/router-helper"
	"github.com/lintang-b-s/nearest-pointset/pkg/http/usecases"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

type pointSetAPI struct {
	pointSetService PointSetService
	log             *zap.Logger
	validate        *validator.Validate
	trans           ut.Translator
}

func New(pointSetService PointSetService, log *zap.Logger) *pointSetAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &pointSetAPI{
		pointSetService: pointSetService,
		log:             log,
		validate:        validate,
		trans:           trans,
	}

}

func (api *pointSetAPI) Routes(group *helper.RouteGroup) {
	nearest := group.Group("/nearest")
	nearest.GET("", api.nearest)
	nearest.POST("/batch", api.nearestBatch)

	group.GET("/stats", api.stats)
}

type errorResponse struct {
	Error string `json:"error"`
}

// pointRequest model info
//
//	@Description	query coordinate. pointers so that 0 passes the required check.
type pointRequest struct {
	X *float64 `json:"x" validate:"required"` // x coordinate of the query.
	Y *float64 `json:"y" validate:"required"` // y coordinate of the query.
}

// nearestResponse model info
//
//	@Description	response body for nearest point query.
type nearestResponse struct {
	Data usecases.NearestResult `json:"data"`
}

// nearest godoc
// @Summary		nearest operation returns the stored point closest to the coordinate given by the user.
// @Description	nearest operation returns the stored point closest to the coordinate given by the user.
// @Tags			pointset
// @ID nearest
// @Param			body	body	pointRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/nearest [get]
// @Success		200	{object}	nearestResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *pointSetAPI) nearest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request pointRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validate.Struct(request); err != nil {
		api.BadRequestResponse(w, r, api.validationError(err))
		return
	}

	result, err := api.pointSetService.Nearest(*request.X, *request.Y)
	if err != nil {
		api.handleServiceError(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeResponse(w, r, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// nearestBatchRequest model info
//
//	@Description	request body for batch nearest point query.
type nearestBatchRequest struct {
	Points []pointRequest `json:"points" validate:"required,min=1,max=1000,dive"` // query coordinates.
}

// nearestBatchResponse model info
//
//	@Description	nearest points, in the order of the query coordinates.
type nearestBatchResponse struct {
	Data []usecases.NearestResult `json:"data"`
}

// nearestBatch godoc
// @Summary		nearestBatch operation returns the nearest stored point for every coordinate given by the user.
// @Description	nearestBatch operation returns the nearest stored point for every coordinate given by the user.
// @Tags			pointset
// @ID nearest-batch
// @Param			body	body	nearestBatchRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/nearest/batch [post]
// @Success		200	{object}	nearestBatchResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *pointSetAPI) nearestBatch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request nearestBatchRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validate.Struct(request); err != nil {
		api.BadRequestResponse(w, r, api.validationError(err))
		return
	}

	queries := make([]datastructure.Point, 0, len(request.Points))
	for _, p := range request.Points {
		queries = append(queries, datastructure.NewPoint(*p.X, *p.Y))
	}

	results, err := api.pointSetService.NearestBatch(r.Context(), queries)
	if err != nil {
		api.handleServiceError(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeResponse(w, r, http.StatusOK, envelope{"data": results}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// stats godoc
// @Summary		stats returns the size and implementation of the served point set.
// @Tags			pointset
// @ID stats
// @Produce		application/json
// @Router			/api/stats [get]
// @Success		200	{object}	usecases.PointSetStats
func (api *pointSetAPI) stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := api.writeResponse(w, r, http.StatusOK, envelope{"data": api.pointSetService.Stats()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *pointSetAPI) validationError(err error) error {
	vv := translateError(err, api.trans)
	vvString := []string{}
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	return fmt.Errorf("validation error: %v", vvString)
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
