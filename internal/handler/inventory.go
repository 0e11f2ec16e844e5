package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/inventory"
	"github.com/osse101/Stockroom_Go/internal/logger"
)

// Success notices mirrored on every mutation response
const (
	MsgItemCreated = "Inventory item created successfully."
	MsgItemUpdated = "Inventory item updated successfully."
	MsgItemDeleted = "Inventory item deleted successfully."
)

// ListingResponse is the listing view model: one page of items, the filters
// that produced it, and the distinct categories for the filter UI
type ListingResponse struct {
	Inventories domain.Page   `json:"inventories"`
	Filters     ListerFilters `json:"filters"`
	Categories  []string      `json:"categories"`
}

// ListerFilters echoes the active filter parameters so page links can
// preserve them
type ListerFilters struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
}

// FormResponse is the create/edit form view model. Item is nil for the
// create form and pre-populated for the edit form.
type FormResponse struct {
	Item       *domain.Item `json:"item"`
	Categories []string     `json:"categories"`
}

// HandleListInventory returns one page of the filtered, newest-first listing
func HandleListInventory(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")
		category := r.URL.Query().Get("category")
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		result, err := service.List(r.Context(), search, category, page)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list inventory", "error", err)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		categories, err := service.Categories(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to load categories", "error", err)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}
		if categories == nil {
			categories = []string{}
		}

		respondJSON(w, http.StatusOK, ListingResponse{
			Inventories: result,
			Filters:     ListerFilters{Search: search, Category: category},
			Categories:  categories,
		})
	}
}

// HandleNewItemForm returns the empty create-form view model
func HandleNewItemForm(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.Categories(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to load categories", "error", err)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}
		if categories == nil {
			categories = []string{}
		}

		respondJSON(w, http.StatusOK, FormResponse{Item: nil, Categories: categories})
	}
}

// HandleGetItem returns the edit-form view model for one item
func HandleGetItem(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
			return
		}

		item, err := service.Get(r.Context(), id)
		if err != nil {
			if !errors.Is(err, domain.ErrItemNotFound) {
				logger.FromContext(r.Context()).Error("Failed to get item", "error", err, "id", id)
			}
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		categories, err := service.Categories(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to load categories", "error", err)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, FormResponse{Item: item, Categories: categories})
	}
}

// HandleCreateItem validates the payload and stores a new item. A validation
// failure reports every failed field along with the submitted input.
func HandleCreateItem(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input inventory.ItemInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		item, err := service.Create(r.Context(), input)
		if err != nil {
			var fieldErrors domain.FieldErrors
			if errors.As(err, &fieldErrors) {
				respondFieldErrors(w, fieldErrors, input)
				return
			}
			logger.FromContext(r.Context()).Error("Failed to create item", "error", err)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgItemCreated, Item: &item})
	}
}

// HandleUpdateItem validates the payload and replaces the item's mutable
// fields. The SKU uniqueness check excludes the item itself.
func HandleUpdateItem(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
			return
		}

		var input inventory.ItemInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		item, err := service.Update(r.Context(), id, input)
		if err != nil {
			var fieldErrors domain.FieldErrors
			if errors.As(err, &fieldErrors) {
				respondFieldErrors(w, fieldErrors, input)
				return
			}
			if !errors.Is(err, domain.ErrItemNotFound) {
				logger.FromContext(r.Context()).Error("Failed to update item", "error", err, "id", id)
			}
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemUpdated, Item: &item})
	}
}

// HandleDeleteItem removes an item permanently
func HandleDeleteItem(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
			return
		}

		if err := service.Delete(r.Context(), id); err != nil {
			if !errors.Is(err, domain.ErrItemNotFound) {
				logger.FromContext(r.Context()).Error("Failed to delete item", "error", err, "id", id)
			}
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeleted})
	}
}

// itemID parses the id route parameter; a malformed id is treated the same
// as an unknown one
func itemID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
