package handler

import (
	"net/http"
	"strings"

	"dashbuilder/internal/builder/model"

	"github.com/labstack/echo/v4"
)

// PostDocument handles POST /sessions/:id/documents
func (h *BuilderHandler) PostDocument(c echo.Context) error {
	var req model.SaveReq
	if err := c.Bind(&req); err != nil {
		return badBody(c, "Invalid body")
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	doc, err := h.Service.Save(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, err)
	}

	status := http.StatusOK
	if req.Mode == model.SaveModeCreate {
		status = http.StatusCreated
	}
	return c.JSON(status, doc)
}

// PostLoadDocuments handles POST /sessions/:id/documents/:collection/load
func (h *BuilderHandler) PostLoadDocuments(c echo.Context) error {
	req := model.CollectionReq{Collection: c.Param("collection")}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	n, err := h.Service.Load(c.Request().Context(), c.Param("id"), req.Collection)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.CountResponse{Count: n})
}

// DeleteDocument handles DELETE /sessions/:id/documents/:collection/:docId
func (h *BuilderHandler) DeleteDocument(c echo.Context) error {
	req := model.CollectionReq{Collection: c.Param("collection")}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}
	docID := strings.TrimSpace(c.Param("docId"))

	if err := h.Service.Delete(c.Request().Context(), c.Param("id"), req.Collection, docID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.StatusResponse{Status: "success"})
}

// PostDuplicateDashboard handles POST /sessions/:id/dashboards/:dashboardId/duplicate
func (h *BuilderHandler) PostDuplicateDashboard(c echo.Context) error {
	dup, err := h.Service.DuplicateDashboard(c.Request().Context(), c.Param("id"), c.Param("dashboardId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dup)
}
