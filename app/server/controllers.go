// Package server exposes the product catalog over a JSON HTTP API.
package server

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mahesh-hegde/khoj/app/catalog"
	"github.com/mahesh-hegde/khoj/app/common"
)

type KhojController struct {
	ps *catalog.ProductService
}

func NewKhojController(ps *catalog.ProductService) *KhojController {
	return &KhojController{ps: ps}
}

type KeywordsResponse struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

type SearchResponse struct {
	Query    string            `json:"query"`
	Category string            `json:"category,omitempty"`
	Count    int               `json:"count"`
	Products []catalog.Product `json:"products"`
}

type RegenerateResponse struct {
	Regenerated int `json:"regenerated"`
}

func (h *KhojController) GetKeywords(c echo.Context) error {
	name := c.QueryParam("name")
	return c.JSON(http.StatusOK, KeywordsResponse{Name: name, Keywords: h.ps.Keywords(name)})
}

func (h *KhojController) SearchProducts(c echo.Context) error {
	params := catalog.SearchParams{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
	}
	products, err := h.ps.Search(c.Request().Context(), params)
	if err != nil {
		return err
	}
	if products == nil {
		products = []catalog.Product{}
	}
	return c.JSON(http.StatusOK, SearchResponse{
		Query:    strings.TrimSpace(params.Query),
		Category: strings.TrimSpace(params.Category),
		Count:    len(products),
		Products: products,
	})
}

func (h *KhojController) GetProduct(c echo.Context) error {
	p, err := h.ps.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func bindInput(c echo.Context) (catalog.ProductInput, error) {
	var in catalog.ProductInput
	if err := (&echo.DefaultBinder{}).BindBody(c, &in); err != nil {
		return in, common.NewBadRequest("invalid product body")
	}
	return in, nil
}

func (h *KhojController) CreateProduct(c echo.Context) error {
	in, err := bindInput(c)
	if err != nil {
		return err
	}
	p, err := h.ps.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse("product", p.ID))
	return c.JSON(http.StatusCreated, p)
}

func (h *KhojController) UpdateProduct(c echo.Context) error {
	in, err := bindInput(c)
	if err != nil {
		return err
	}
	p, err := h.ps.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *KhojController) DeleteProduct(c echo.Context) error {
	if err := h.ps.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func importFormat(param, filename string) (catalog.ImportFormat, error) {
	format := strings.ToLower(strings.TrimSpace(param))
	if format == "" && filename != "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	}
	switch catalog.ImportFormat(format) {
	case "", catalog.FormatCSV:
		return catalog.FormatCSV, nil
	case catalog.FormatXLSX:
		return catalog.FormatXLSX, nil
	default:
		return "", common.NewBadRequest("unsupported import format %q", format)
	}
}

// ImportProducts accepts the file either as a multipart "file" field or as
// the raw request body.
func (h *KhojController) ImportProducts(c echo.Context) error {
	var body io.Reader = c.Request().Body
	filename := ""

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return common.NewBadRequest("multipart upload needs a file field")
		}
		f, err := fh.Open()
		if err != nil {
			return err
		}
		defer f.Close()
		body = f
		filename = fh.Filename
	}

	format, err := importFormat(c.QueryParam("format"), filename)
	if err != nil {
		return err
	}
	result, err := h.ps.Import(c.Request().Context(), body, format)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *KhojController) RegenerateKeywords(c echo.Context) error {
	n, err := h.ps.RegenerateKeywords(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, RegenerateResponse{Regenerated: n})
}
