package books

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/dto"
	"github.com/tranvhq/golibrary/internal/service/catalogservice"
	"github.com/tranvhq/golibrary/pkg/auth"
	"github.com/tranvhq/golibrary/pkg/utils"
	"github.com/tranvhq/golibrary/pkg/validate"
)

//go:generate mockgen -source=books.go -destination=mock_books.go -package=books

type Service interface {
	GetBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, bookID int) (*domain.Book, error)
	CreateBook(ctx context.Context, book *domain.Book, actor domain.Actor) (*domain.Book, error)
	UpdateBook(ctx context.Context, book *domain.Book, actor domain.Actor) (*domain.Book, error)
	GetCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string, actor domain.Actor) (*domain.Category, error)
}

type BookHandler struct {
	catalogService Service
}

func New(catalogService Service) *BookHandler {
	return &BookHandler{
		catalogService: catalogService,
	}
}

// GetBooks godoc
//
//	@Summary	List active books
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}		dto.BookDTO
//	@Failure	204	{object}	utils.Response	"No books"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/books [get]
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalogService.GetBooks(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(books) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No books")
		return
	}

	response := make([]dto.BookDTO, len(books))
	for i, book := range books {
		response[i] = toBookDTO(&book)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBook godoc
//
//	@Summary	Fetch a single book
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path		int	true	"Book ID"
//	@Success	200	{object}	dto.BookDTO
//	@Failure	404	{object}	utils.Response	"Book not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/books/{id} [get]
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	book, err := h.catalogService.GetBook(r.Context(), bookID)
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBookDTO(book))
}

// CreateBook godoc
//
//	@Summary	Add a book to the catalog
//	@Tags		Catalog
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.UpsertBookDTO	true	"Book payload"
//	@Success	201		{object}	dto.BookDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Staff capability required"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/books [post]
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())

	var req dto.UpsertBookDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.catalogService.CreateBook(r.Context(), fromUpsertDTO(0, &req), domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toBookDTO(created))
}

// UpdateBook godoc
//
//	@Summary	Update a catalog book
//	@Tags		Catalog
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Book ID"
//	@Param		request	body		dto.UpsertBookDTO	true	"Book payload"
//	@Success	200		{object}	dto.BookDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Staff capability required"
//	@Failure	404		{object}	utils.Response	"Book not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/books/{id} [put]
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())
	bookID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	var req dto.UpsertBookDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.catalogService.UpdateBook(r.Context(), fromUpsertDTO(bookID, &req), domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBookDTO(updated))
}

// GetCategories godoc
//
//	@Summary	List book categories
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}		dto.CategoryDTO
//	@Failure	204	{object}	utils.Response	"No categories"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/categories [get]
func (h *BookHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.GetCategories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(categories) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No categories")
		return
	}

	response := make([]dto.CategoryDTO, len(categories))
	for i, c := range categories {
		response[i] = dto.CategoryDTO{ID: c.ID, Name: c.Name}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateCategory godoc
//
//	@Summary	Add a book category
//	@Tags		Catalog
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateCategoryDTO	true	"Category payload"
//	@Success	201		{object}	dto.CategoryDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Staff capability required"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/categories [post]
func (h *BookHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())

	var req dto.CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.catalogService.CreateCategory(r.Context(), req.Name, domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CategoryDTO{ID: created.ID, Name: created.Name})
}

func respondCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalogservice.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toBookDTO(book *domain.Book) dto.BookDTO {
	return dto.BookDTO{
		ID:              book.ID,
		Title:           book.Title,
		Author:          book.Author,
		Publisher:       book.Publisher,
		PublishYear:     book.PublishYear,
		ISBN:            book.ISBN,
		Description:     book.Description,
		CategoryID:      book.CategoryID,
		TotalCopies:     book.TotalCopies,
		AvailableCopies: book.AvailableCopies,
	}
}

func fromUpsertDTO(id int, req *dto.UpsertBookDTO) *domain.Book {
	book := &domain.Book{
		ID:          id,
		Title:       req.Title,
		Author:      req.Author,
		Publisher:   req.Publisher,
		PublishYear: req.PublishYear,
		ISBN:        req.ISBN,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		TotalCopies: req.TotalCopies,
		IsActive:    true,
	}
	if req.IsActive != nil {
		book.IsActive = *req.IsActive
	}
	return book
}
