package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"netbill/internal/application/catalog/usecases"
	"netbill/internal/domain/catalog"
	"netbill/internal/shared/logger"
	"netbill/internal/shared/utils"
)

// PackageHandler handles package catalog administration.
type PackageHandler struct {
	createUseCase createPackageUseCase
	updateUseCase updatePackageUseCase
	deleteUseCase deletePackageUseCase
	listUseCase   listPackagesUseCase
	getUseCase    getPackageUseCase
	logger        logger.Interface
}

func NewPackageHandler(
	createUC createPackageUseCase,
	updateUC updatePackageUseCase,
	deleteUC deletePackageUseCase,
	listUC listPackagesUseCase,
	getUC getPackageUseCase,
	logger logger.Interface,
) *PackageHandler {
	return &PackageHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		listUseCase:   listUC,
		getUseCase:    getUC,
		logger:        logger,
	}
}

type CreatePackageRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Price        uint64 `json:"price"`
	ValidityDays int    `json:"validity_days" binding:"required,gt=0"`
}

type UpdatePackageRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Price        *uint64 `json:"price"`
	ValidityDays *int    `json:"validity_days" binding:"omitempty,gt=0"`
	Status       *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// PackageResponse is the presentation shape of a package.
type PackageResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Price        uint64 `json:"price"`
	ValidityDays int    `json:"validity_days"`
	Status       string `json:"status"`
}

func toPackageResponse(pkg *catalog.Package) *PackageResponse {
	return &PackageResponse{
		ID:           pkg.ID(),
		Name:         pkg.Name(),
		Price:        pkg.Price(),
		ValidityDays: pkg.ValidityDays(),
		Status:       string(pkg.Status()),
	}
}

func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create package", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	pkg, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreatePackageCommand{
		Name:         req.Name,
		Price:        req.Price,
		ValidityDays: req.ValidityDays,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toPackageResponse(pkg), "Package created successfully")
}

func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	packageID, err := utils.ParseUintParam(c, "id", "package")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update package", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	pkg, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdatePackageCommand{
		PackageID:    packageID,
		Name:         req.Name,
		Price:        req.Price,
		ValidityDays: req.ValidityDays,
		Status:       req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Package updated successfully", toPackageResponse(pkg))
}

func (h *PackageHandler) DeletePackage(c *gin.Context) {
	packageID, err := utils.ParseUintParam(c, "id", "package")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), packageID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *PackageHandler) ListPackages(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	packages, err := h.listUseCase.Execute(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]*PackageResponse, 0, len(packages))
	for _, pkg := range packages {
		responses = append(responses, toPackageResponse(pkg))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

func (h *PackageHandler) GetPackage(c *gin.Context) {
	packageID, err := utils.ParseUintParam(c, "id", "package")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pkg, err := h.getUseCase.Execute(c.Request.Context(), packageID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toPackageResponse(pkg))
}
