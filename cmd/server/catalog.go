package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/framecraft/framepos/internal/catalog"
	"github.com/framecraft/framepos/internal/pricing"
)

type frameRequest struct {
	Name             string  `json:"name"`
	Vendor           string  `json:"vendor"`
	SKU              string  `json:"sku"`
	WholesalePerFoot float64 `json:"wholesale_per_foot"`
	MouldingWidth    float64 `json:"moulding_width"`
	Active           bool    `json:"active"`
}

func (req frameRequest) validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}
	if req.WholesalePerFoot < 0 {
		return errors.New("wholesale_per_foot must not be negative")
	}
	if req.MouldingWidth < 0 {
		return errors.New("moulding_width must not be negative")
	}
	return nil
}

func (s *server) handleFramesList(w http.ResponseWriter, r *http.Request) {
	frames, err := s.store.ListFrames()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load frames")
		return
	}
	writeJSON(w, http.StatusOK, frames)
}

func (s *server) handleFramesCreate(w http.ResponseWriter, r *http.Request) {
	var req frameRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.store.CreateFrame(catalog.Frame{
		Name:             strings.TrimSpace(req.Name),
		Vendor:           strings.TrimSpace(req.Vendor),
		SKU:              strings.TrimSpace(req.SKU),
		WholesalePerFoot: req.WholesalePerFoot,
		MouldingWidth:    req.MouldingWidth,
		Active:           req.Active,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create frame")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *server) handleFramesUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req frameRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := s.store.UpdateFrame(catalog.Frame{
		ID:               id,
		Name:             strings.TrimSpace(req.Name),
		Vendor:           strings.TrimSpace(req.Vendor),
		SKU:              strings.TrimSpace(req.SKU),
		WholesalePerFoot: req.WholesalePerFoot,
		MouldingWidth:    req.MouldingWidth,
		Active:           req.Active,
	})
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "frame not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update frame")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type matRequest struct {
	Name                   string  `json:"name"`
	Vendor                 string  `json:"vendor"`
	WholesalePerSquareInch float64 `json:"wholesale_per_square_inch"`
	Active                 bool    `json:"active"`
}

func (req matRequest) validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}
	if req.WholesalePerSquareInch < 0 {
		return errors.New("wholesale_per_square_inch must not be negative")
	}
	return nil
}

func (s *server) handleMatsList(w http.ResponseWriter, r *http.Request) {
	mats, err := s.store.ListMats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load mats")
		return
	}
	writeJSON(w, http.StatusOK, mats)
}

func (s *server) handleMatsCreate(w http.ResponseWriter, r *http.Request) {
	var req matRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.store.CreateMat(catalog.Mat{
		Name:                   strings.TrimSpace(req.Name),
		Vendor:                 strings.TrimSpace(req.Vendor),
		WholesalePerSquareInch: req.WholesalePerSquareInch,
		Active:                 req.Active,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create mat")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *server) handleMatsUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req matRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := s.store.UpdateMat(catalog.Mat{
		ID:                     id,
		Name:                   strings.TrimSpace(req.Name),
		Vendor:                 strings.TrimSpace(req.Vendor),
		WholesalePerSquareInch: req.WholesalePerSquareInch,
		Active:                 req.Active,
	})
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "mat not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update mat")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type glazingRequest struct {
	Name        string  `json:"name"`
	PriceAmount float64 `json:"price_amount"`
	PriceUnit   string  `json:"price_unit"`
	Active      bool    `json:"active"`
}

func (req glazingRequest) validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}
	if req.PriceAmount < 0 {
		return errors.New("price_amount must not be negative")
	}
	switch pricing.PriceUnit(req.PriceUnit) {
	case pricing.PerSquareInch, pricing.PerSquareFoot:
		return nil
	default:
		return errors.New("price_unit must be per_square_inch or per_square_foot")
	}
}

func (s *server) handleGlazingList(w http.ResponseWriter, r *http.Request) {
	options, err := s.store.ListGlazing()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load glazing")
		return
	}
	writeJSON(w, http.StatusOK, options)
}

func (s *server) handleGlazingCreate(w http.ResponseWriter, r *http.Request) {
	var req glazingRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.store.CreateGlazing(catalog.Glazing{
		Name:   strings.TrimSpace(req.Name),
		Price:  pricing.UnitPrice{Amount: req.PriceAmount, Unit: pricing.PriceUnit(req.PriceUnit)},
		Active: req.Active,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create glazing")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *server) handleGlazingUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req glazingRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := s.store.UpdateGlazing(catalog.Glazing{
		ID:     id,
		Name:   strings.TrimSpace(req.Name),
		Price:  pricing.UnitPrice{Amount: req.PriceAmount, Unit: pricing.PriceUnit(req.PriceUnit)},
		Active: req.Active,
	})
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "glazing not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update glazing")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type serviceRequest struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Active bool    `json:"active"`
}

func (req serviceRequest) validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}
	if req.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

func (s *server) handleServicesList(w http.ResponseWriter, r *http.Request) {
	services, err := s.store.ListServices()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load services")
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (s *server) handleServicesCreate(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.store.CreateService(catalog.Service{
		Name:   strings.TrimSpace(req.Name),
		Price:  req.Price,
		Active: req.Active,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create service")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *server) handleServicesUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req serviceRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := s.store.UpdateService(catalog.Service{
		ID:     id,
		Name:   strings.TrimSpace(req.Name),
		Price:  req.Price,
		Active: req.Active,
	})
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update service")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type pricingConfigRequest struct {
	TaxRatePercent     float64 `json:"tax_rate_percent"`
	BackingPriceAmount float64 `json:"backing_price_amount"`
	BackingPriceUnit   string  `json:"backing_price_unit"`
	Currency           string  `json:"currency"`
}

func (req pricingConfigRequest) validate() error {
	if req.TaxRatePercent < 0 || req.TaxRatePercent > 100 {
		return errors.New("tax_rate_percent must be between 0 and 100")
	}
	if req.BackingPriceAmount < 0 {
		return errors.New("backing_price_amount must not be negative")
	}
	switch pricing.PriceUnit(req.BackingPriceUnit) {
	case pricing.PerSquareInch, pricing.PerSquareFoot:
	default:
		return errors.New("backing_price_unit must be per_square_inch or per_square_foot")
	}
	if strings.TrimSpace(req.Currency) == "" {
		return errors.New("currency is required")
	}
	return nil
}

func (s *server) handlePricingConfigGet(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.store.GetPricingConfig()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load pricing config")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *server) handlePricingConfigUpdate(w http.ResponseWriter, r *http.Request) {
	var req pricingConfigRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := s.store.UpdatePricingConfig(catalog.PricingConfig{
		TaxRatePercent: req.TaxRatePercent,
		BackingPrice:   pricing.UnitPrice{Amount: req.BackingPriceAmount, Unit: pricing.PriceUnit(req.BackingPriceUnit)},
		Currency:       strings.TrimSpace(req.Currency),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update pricing config")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
