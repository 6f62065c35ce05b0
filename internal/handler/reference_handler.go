package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// NameRequest represents a name-only reference payload
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// StateRequest represents the state payload
type StateRequest struct {
	CountryID uint   `json:"country_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// CityRequest represents the city payload
type CityRequest struct {
	StateID uint   `json:"state_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

// AirlineRequest represents the airline payload
type AirlineRequest struct {
	Name string  `json:"name" binding:"required"`
	Code *string `json:"code"`
}

// ReferenceHandler handles shared lookup data HTTP requests
type ReferenceHandler struct {
	refService service.ReferenceService
	logger     *logger.Logger
}

// NewReferenceHandler creates a new ReferenceHandler instance
func NewReferenceHandler(refService service.ReferenceService, logger *logger.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		refService: refService,
		logger:     logger,
	}
}

// CreateCountry creates a country
// @Summary Create country
// @Tags reference
// @Accept json
// @Produce json
// @Param request body NameRequest true "Country payload"
// @Success 201 {object} utils.APIResponse{data=models.Country} "Country created"
// @Failure 409 {object} utils.APIResponse "Duplicate name"
// @Router /api/v1/countries [post]
func (h *ReferenceHandler) CreateCountry(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}
	country, err := h.refService.CreateCountry(req.Name)
	if err != nil {
		respondServiceError(c, h.logger, err, "create country")
		return
	}
	utils.CreatedResponse(c, "Country created", country)
}

// ListCountries lists countries
// @Summary List countries
// @Tags reference
// @Produce json
// @Param search query string false "Search by name"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "Countries"
// @Router /api/v1/countries [get]
func (h *ReferenceHandler) ListCountries(c *gin.Context) {
	page, perPage := utils.GetPaginationParams(c)
	countries, total, err := h.refService.ListCountries(c.Query("search"), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list countries")
		return
	}
	utils.PaginatedSuccessResponse(c, "Countries retrieved", countries, page, perPage, total)
}

// UpdateCountry renames a country
// @Summary Update country
// @Tags reference
// @Accept json
// @Produce json
// @Param id path int true "Country ID"
// @Param request body NameRequest true "Country payload"
// @Success 200 {object} utils.APIResponse{data=models.Country} "Country updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/countries/{id} [put]
func (h *ReferenceHandler) UpdateCountry(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid country ID", err)
		return
	}
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}
	country, err := h.refService.UpdateCountry(id, req.Name)
	if err != nil {
		respondServiceError(c, h.logger, err, "update country")
		return
	}
	utils.SuccessResponse(c, "Country updated", country)
}

// DeleteCountry removes a country
// @Summary Delete country
// @Tags reference
// @Produce json
// @Param id path int true "Country ID"
// @Success 200 {object} utils.APIResponse "Country deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/countries/{id} [delete]
func (h *ReferenceHandler) DeleteCountry(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid country ID", err)
		return
	}
	if err := h.refService.DeleteCountry(id); err != nil {
		respondServiceError(c, h.logger, err, "delete country")
		return
	}
	utils.SuccessResponse(c, "Country deleted", nil)
}

// CreateState creates a state under a country
// @Summary Create state
// @Tags reference
// @Accept json
// @Produce json
// @Param request body StateRequest true "State payload"
// @Success 201 {object} utils.APIResponse{data=models.State} "State created"
// @Failure 404 {object} utils.APIResponse "Country not found"
// @Router /api/v1/states [post]
func (h *ReferenceHandler) CreateState(c *gin.Context) {
	var req StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with country_id and name", err)
		return
	}
	state, err := h.refService.CreateState(req.CountryID, req.Name)
	if err != nil {
		respondServiceError(c, h.logger, err, "create state")
		return
	}
	utils.CreatedResponse(c, "State created", state)
}

// ListStates lists states, optionally scoped to a country
// @Summary List states
// @Tags reference
// @Produce json
// @Param country_id query int false "Filter by country"
// @Param search query string false "Search by name"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "States"
// @Router /api/v1/states [get]
func (h *ReferenceHandler) ListStates(c *gin.Context) {
	page, perPage := utils.GetPaginationParams(c)
	var countryID *uint
	if v := utils.GetIntQuery(c, "country_id"); v != nil && *v > 0 {
		id := uint(*v)
		countryID = &id
	}
	states, total, err := h.refService.ListStates(countryID, c.Query("search"), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list states")
		return
	}
	utils.PaginatedSuccessResponse(c, "States retrieved", states, page, perPage, total)
}

// UpdateState renames a state
// @Summary Update state
// @Tags reference
// @Accept json
// @Produce json
// @Param id path int true "State ID"
// @Param request body NameRequest true "State payload"
// @Success 200 {object} utils.APIResponse{data=models.State} "State updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/states/{id} [put]
func (h *ReferenceHandler) UpdateState(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid state ID", err)
		return
	}
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}
	state, err := h.refService.UpdateState(id, req.Name)
	if err != nil {
		respondServiceError(c, h.logger, err, "update state")
		return
	}
	utils.SuccessResponse(c, "State updated", state)
}

// DeleteState removes a state
// @Summary Delete state
// @Tags reference
// @Produce json
// @Param id path int true "State ID"
// @Success 200 {object} utils.APIResponse "State deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/states/{id} [delete]
func (h *ReferenceHandler) DeleteState(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid state ID", err)
		return
	}
	if err := h.refService.DeleteState(id); err != nil {
		respondServiceError(c, h.logger, err, "delete state")
		return
	}
	utils.SuccessResponse(c, "State deleted", nil)
}

// CreateCity creates a city under a state
// @Summary Create city
// @Tags reference
// @Accept json
// @Produce json
// @Param request body CityRequest true "City payload"
// @Success 201 {object} utils.APIResponse{data=models.City} "City created"
// @Failure 404 {object} utils.APIResponse "State not found"
// @Router /api/v1/cities [post]
func (h *ReferenceHandler) CreateCity(c *gin.Context) {
	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with state_id and name", err)
		return
	}
	city, err := h.refService.CreateCity(req.StateID, req.Name)
	if err != nil {
		respondServiceError(c, h.logger, err, "create city")
		return
	}
	utils.CreatedResponse(c, "City created", city)
}

// ListCities lists cities, optionally scoped to a state
// @Summary List cities
// @Tags reference
// @Produce json
// @Param state_id query int false "Filter by state"
// @Param search query string false "Search by name"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "Cities"
// @Router /api/v1/cities [get]
func (h *ReferenceHandler) ListCities(c *gin.Context) {
	page, perPage := utils.GetPaginationParams(c)
	var stateID *uint
	if v := utils.GetIntQuery(c, "state_id"); v != nil && *v > 0 {
		id := uint(*v)
		stateID = &id
	}
	cities, total, err := h.refService.ListCities(stateID, c.Query("search"), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list cities")
		return
	}
	utils.PaginatedSuccessResponse(c, "Cities retrieved", cities, page, perPage, total)
}

// UpdateCity renames a city
// @Summary Update city
// @Tags reference
// @Accept json
// @Produce json
// @Param id path int true "City ID"
// @Param request body NameRequest true "City payload"
// @Success 200 {object} utils.APIResponse{data=models.City} "City updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/cities/{id} [put]
func (h *ReferenceHandler) UpdateCity(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid city ID", err)
		return
	}
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}
	city, err := h.refService.UpdateCity(id, req.Name)
	if err != nil {
		respondServiceError(c, h.logger, err, "update city")
		return
	}
	utils.SuccessResponse(c, "City updated", city)
}

// DeleteCity removes a city
// @Summary Delete city
// @Tags reference
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} utils.APIResponse "City deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/cities/{id} [delete]
func (h *ReferenceHandler) DeleteCity(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid city ID", err)
		return
	}
	if err := h.refService.DeleteCity(id); err != nil {
		respondServiceError(c, h.logger, err, "delete city")
		return
	}
	utils.SuccessResponse(c, "City deleted", nil)
}

// CreateBank creates a bank
// @Summary Create bank
// @Tags reference
// @Accept json
// @Produce json
// @Param request body NameRequest true "Bank payload"
// @Success 201 {object} utils.APIResponse{data=models.Bank} "Bank created"
// @Failure 409 {object} utils.APIResponse "Duplicate name"
// @Router /api/v1/banks [post]
func (h *ReferenceHandler) CreateBank(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}
	bank, err := h.refService.CreateBank(req.Name)
	if err != nil {
		respondServiceError(c, h.logger, err, "create bank")
		return
	}
	utils.CreatedResponse(c, "Bank created", bank)
}

// ListBanks lists banks
// @Summary List banks
// @Tags reference
// @Produce json
// @Param search query string false "Search by name"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "Banks"
// @Router /api/v1/banks [get]
func (h *ReferenceHandler) ListBanks(c *gin.Context) {
	page, perPage := utils.GetPaginationParams(c)
	banks, total, err := h.refService.ListBanks(c.Query("search"), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list banks")
		return
	}
	utils.PaginatedSuccessResponse(c, "Banks retrieved", banks, page, perPage, total)
}

// UpdateBank renames a bank
// @Summary Update bank
// @Tags reference
// @Accept json
// @Produce json
// @Param id path int true "Bank ID"
// @Param request body NameRequest true "Bank payload"
// @Success 200 {object} utils.APIResponse{data=models.Bank} "Bank updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/banks/{id} [put]
func (h *ReferenceHandler) UpdateBank(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bank ID", err)
		return
	}
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}
	bank, err := h.refService.UpdateBank(id, req.Name)
	if err != nil {
		respondServiceError(c, h.logger, err, "update bank")
		return
	}
	utils.SuccessResponse(c, "Bank updated", bank)
}

// DeleteBank removes a bank
// @Summary Delete bank
// @Tags reference
// @Produce json
// @Param id path int true "Bank ID"
// @Success 200 {object} utils.APIResponse "Bank deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/banks/{id} [delete]
func (h *ReferenceHandler) DeleteBank(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bank ID", err)
		return
	}
	if err := h.refService.DeleteBank(id); err != nil {
		respondServiceError(c, h.logger, err, "delete bank")
		return
	}
	utils.SuccessResponse(c, "Bank deleted", nil)
}

// CreateAirline creates an airline
// @Summary Create airline
// @Tags reference
// @Accept json
// @Produce json
// @Param request body AirlineRequest true "Airline payload"
// @Success 201 {object} utils.APIResponse{data=models.Airline} "Airline created"
// @Failure 409 {object} utils.APIResponse "Duplicate name"
// @Router /api/v1/airlines [post]
func (h *ReferenceHandler) CreateAirline(c *gin.Context) {
	var req AirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}
	airline, err := h.refService.CreateAirline(req.Name, req.Code)
	if err != nil {
		respondServiceError(c, h.logger, err, "create airline")
		return
	}
	utils.CreatedResponse(c, "Airline created", airline)
}

// ListAirlines lists airlines
// @Summary List airlines
// @Tags reference
// @Produce json
// @Param search query string false "Search by name"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "Airlines"
// @Router /api/v1/airlines [get]
func (h *ReferenceHandler) ListAirlines(c *gin.Context) {
	page, perPage := utils.GetPaginationParams(c)
	airlines, total, err := h.refService.ListAirlines(c.Query("search"), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list airlines")
		return
	}
	utils.PaginatedSuccessResponse(c, "Airlines retrieved", airlines, page, perPage, total)
}

// UpdateAirline updates an airline
// @Summary Update airline
// @Tags reference
// @Accept json
// @Produce json
// @Param id path int true "Airline ID"
// @Param request body AirlineRequest true "Airline payload"
// @Success 200 {object} utils.APIResponse{data=models.Airline} "Airline updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/airlines/{id} [put]
func (h *ReferenceHandler) UpdateAirline(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid airline ID", err)
		return
	}
	var req AirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}
	airline, err := h.refService.UpdateAirline(id, req.Name, req.Code)
	if err != nil {
		respondServiceError(c, h.logger, err, "update airline")
		return
	}
	utils.SuccessResponse(c, "Airline updated", airline)
}

// DeleteAirline removes an airline
// @Summary Delete airline
// @Tags reference
// @Produce json
// @Param id path int true "Airline ID"
// @Success 200 {object} utils.APIResponse "Airline deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/airlines/{id} [delete]
func (h *ReferenceHandler) DeleteAirline(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid airline ID", err)
		return
	}
	if err := h.refService.DeleteAirline(id); err != nil {
		respondServiceError(c, h.logger, err, "delete airline")
		return
	}
	utils.SuccessResponse(c, "Airline deleted", nil)
}
