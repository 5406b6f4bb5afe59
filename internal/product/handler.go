package product

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler exposes the catalog endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler wires the catalog handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /api/products. The section parameter mirrors the
// client's carousel titles: "TRENDING" and the popular/recommended
// sections map to fixed queries, any other title is treated as a main
// category or a subcategory.
func (h *Handler) List(c *gin.Context) {
	var (
		products []Product
		err      error
	)

	switch {
	case c.Query("q") != "":
		products, err = h.repo.Search(c.Query("q"))
	case c.Query("category") != "":
		products, err = h.repo.ByCategory(c.Query("category"))
	case c.Query("subcategory") != "":
		products, err = h.repo.BySubcategory(c.Query("subcategory"))
	case c.Query("section") != "":
		products, err = h.bySection(c.Query("section"))
	default:
		products, err = h.repo.TopRated()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) bySection(title string) ([]Product, error) {
	switch {
	case title == "TRENDING":
		return h.repo.Trending()
	case title == "Popular / Most Searched Items":
		return h.repo.TopRated()
	case IsMainCategory(title):
		return h.repo.ByCategory(title)
	default:
		return h.repo.BySubcategory(title)
	}
}

// GetByID handles GET /api/products/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.repo.ByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load product"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}
