package handlers

import (
	"net/http"

	"github.com/Sonkaryasshu/stealth-e-com/internal/health"
	"github.com/Sonkaryasshu/stealth-e-com/internal/models"
	"github.com/Sonkaryasshu/stealth-e-com/internal/session"
	"github.com/Sonkaryasshu/stealth-e-com/internal/ui"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const sessionCookie = "store_session"

// catalogScope keys the catalog view's cards; chat cards are scoped by the
// AI message id so the same product gets independent flags per rendering.
const catalogScope = "catalog"

type StorefrontHandler struct {
	store   *session.Store
	checker *health.Checker
	logger  *logrus.Logger
}

func NewStorefrontHandler(store *session.Store, checker *health.Checker, logger *logrus.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		store:   store,
		checker: checker,
		logger:  logger,
	}
}

// indexView is the immutable snapshot handed to the templates.
type indexView struct {
	Page        *ui.Page
	CatalogGrid *ui.Grid
	LatestUser  *models.ChatMessage
	LatestAI    *models.ChatMessage
	AIGrid      *ui.Grid
}

// Index renders the storefront: the catalog view, or the chat view while a
// search session is active.
func (h *StorefrontHandler) Index(c *gin.Context) {
	sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	sess.Page.Load(c.Request.Context())

	if category, ok := c.GetQuery("category"); ok {
		sess.Page.SetCategory(category)
	}

	view := indexView{Page: sess.Page}

	if sess.Page.SearchActive() {
		view.LatestUser, view.LatestAI = sess.Page.Panel.LatestExchange()
		if view.LatestAI != nil && view.LatestAI.Response != nil {
			view.AIGrid = ui.NewGrid(sess.Cards, view.LatestAI.ID, view.LatestAI.Response.Results)
		}
	} else {
		products := sess.Page.Filtered()
		results := make([]models.ProductResult, 0, len(products))
		for i := range products {
			results = append(results, models.ProductResult{Product: &products[i]})
		}
		view.CatalogGrid = ui.NewGrid(sess.Cards, catalogScope, results)
	}

	c.HTML(http.StatusOK, "index", view)
}

// Search submits one query turn and redirects back to the page. Empty and
// whitespace-only queries fall through as a no-op.
func (h *StorefrontHandler) Search(c *gin.Context) {
	sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	query := c.PostForm("q")
	if submitted := sess.Page.Panel.Submit(c.Request.Context(), query); !submitted {
		h.logger.Debug("Ignoring empty search submit")
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Reset is the "New Search" action.
func (h *StorefrontHandler) Reset(c *gin.Context) {
	sess := h.session(c)
	sess.Lock()
	sess.Page.Panel.Reset()
	sess.Unlock()

	c.Redirect(http.StatusSeeOther, "/")
}

// ImageError marks a card's primary image as failed. Called by the inline
// onerror hook; unknown keys are a no-op so stale pages never error.
func (h *StorefrontHandler) ImageError(c *gin.Context) {
	sess := h.session(c)
	sess.Lock()
	if card := sess.Cards.Get(c.Param("key")); card != nil {
		card.MarkImageFailed()
	}
	sess.Unlock()

	c.Status(http.StatusNoContent)
}

// ToggleCitations flips a card's supporting-reviews section and re-renders.
func (h *StorefrontHandler) ToggleCitations(c *gin.Context) {
	sess := h.session(c)
	sess.Lock()
	if card := sess.Cards.Get(c.Param("key")); card != nil {
		card.ToggleCitations()
	}
	sess.Unlock()

	c.Redirect(http.StatusSeeOther, "/")
}

// Health reports storefront and backend status.
func (h *StorefrontHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.checker.CheckAll())
}

// session resolves the browser session from the cookie, creating one (and
// setting the cookie) when absent or expired.
func (h *StorefrontHandler) session(c *gin.Context) *session.Session {
	id, _ := c.Cookie(sessionCookie)
	sess := h.store.GetOrCreate(id)
	if sess.ID != id {
		c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
	}
	return sess
}
