package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/post-service/internal/api/dto"
	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/service"
	apperrors "github.com/spec-kit/post-service/pkg/util/errorutil"
)

// PostsHandler manages post endpoints. Role and ownership checks happen
// in the route guards; handlers only need the principal's identity.
type PostsHandler struct {
	service *service.PostService
}

// NewPostsHandler constructs handler.
func NewPostsHandler(postService *service.PostService) *PostsHandler {
	return &PostsHandler{service: postService}
}

// List GET /posts.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	posts, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postResponses(posts)})
}

// ListMine GET /posts/my-posts.
func (h *PostsHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := auth.SubjectFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	posts, err := h.service.ListByAuthor(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postResponses(posts)})
}

// Get GET /posts/:id.
func (h *PostsHandler) Get(c *fiber.Ctx) error {
	post, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postResponse(post)})
}

// Create POST /posts.
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	input, err := parsePostInput(c)
	if err != nil {
		return err
	}
	post, err := h.service.Create(c.UserContext(), principal, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": postResponse(post)})
}

// Update POST /posts/:id and POST /posts/my-posts/:id.
func (h *PostsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	input, err := parsePostInput(c)
	if err != nil {
		return err
	}
	post, err := h.service.Update(c.UserContext(), principal, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postResponse(post)})
}

// Delete DELETE /posts/:id and DELETE /posts/my-posts/:id.
func (h *PostsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.Delete(c.UserContext(), principal, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parsePostInput(c *fiber.Ctx) (service.PostInput, error) {
	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return service.PostInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return service.PostInput{}, apperrors.NewValidationError("title required", nil)
	}
	return service.PostInput{Title: req.Title, Body: req.Body}, nil
}

func postResponse(post *domain.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Body:      post.Body,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func postResponses(posts []domain.Post) []dto.PostResponse {
	items := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		items = append(items, postResponse(&posts[i]))
	}
	return items
}
