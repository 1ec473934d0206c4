package http

import (
	"errors"

	apperrors "snapfeed/internal/shared/errors"
	"snapfeed/internal/shared/logger"
	"snapfeed/internal/shared/utils"
	"snapfeed/internal/social/config"
	"snapfeed/internal/social/domain/repository"
	"snapfeed/internal/social/usecase"

	"github.com/gofiber/fiber/v2"
)

// SocialHTTPHandler handles HTTP requests for the social data layer.
type SocialHTTPHandler struct {
	profiles usecase.ProfileUsecaseInterface
	graph    usecase.GraphUsecaseInterface
	posts    usecase.PostUsecaseInterface
	comments usecase.CommentUsecaseInterface
	activity repository.ActivityStore
	config   *config.Config
	log      logger.Logger
}

// NewSocialHTTPHandler creates a new social HTTP handler.
func NewSocialHTTPHandler(
	profiles usecase.ProfileUsecaseInterface,
	graph usecase.GraphUsecaseInterface,
	posts usecase.PostUsecaseInterface,
	comments usecase.CommentUsecaseInterface,
	activity repository.ActivityStore,
	cfg *config.Config,
	log logger.Logger,
) *SocialHTTPHandler {
	return &SocialHTTPHandler{
		profiles: profiles,
		graph:    graph,
		posts:    posts,
		comments: comments,
		activity: activity,
		config:   cfg,
		log:      log.WithComponent("social_http"),
	}
}

// SetupRoutes registers the social routes. The caller applies the auth
// middleware; every handler reads identity from the request context only.
func (h *SocialHTTPHandler) SetupRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Get("/", h.ListProfiles)
	users.Get("/search", h.SearchProfiles)
	users.Get("/me", h.GetCurrentProfile)
	users.Put("/me", h.UpdateProfile)
	users.Get("/me/saves", h.GetSavedPosts)
	users.Get("/me/activity", h.GetActivity)
	users.Get("/:userId", h.GetProfile)
	users.Get("/:userId/posts", h.GetUserPosts)
	users.Post("/:userId/follow", h.Follow)
	users.Delete("/:userId/follow", h.Unfollow)
	users.Get("/:userId/follow", h.IsFollowing)
	users.Get("/:userId/followers/count", h.FollowerCount)
	users.Get("/:userId/following/count", h.FollowingCount)

	posts := router.Group("/posts")
	posts.Post("/", h.CreatePost)
	posts.Get("/", h.GetRecentPosts)
	posts.Get("/search", h.SearchPosts)
	posts.Get("/infinite", h.GetInfinitePosts)
	posts.Get("/:postId", h.GetPost)
	posts.Put("/:postId", h.UpdatePost)
	posts.Delete("/:postId", h.DeletePost)
	posts.Post("/:postId/like", h.LikePost)
	posts.Delete("/:postId/like", h.UnlikePost)
	posts.Post("/:postId/save", h.SavePost)
	posts.Get("/:postId/comments", h.ListPostComments)

	router.Delete("/saves/:saveId", h.UnsavePost)

	comments := router.Group("/comments")
	comments.Post("/", h.CreateComment)
	comments.Get("/", h.ListComments)
	comments.Put("/:commentId", h.EditComment)
	comments.Delete("/:commentId", h.DeleteComment)
}

// User directory handlers

func (h *SocialHTTPHandler) GetCurrentProfile(c *fiber.Ctx) error {
	profile, err := h.profiles.GetCurrentProfile(c.UserContext())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(profile)
}

func (h *SocialHTTPHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.profiles.GetProfileByID(c.UserContext(), c.Params("userId"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(profile)
}

func (h *SocialHTTPHandler) ListProfiles(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", h.config.ProfileListLimit))
	profiles, err := h.profiles.ListProfiles(c.UserContext(), limit)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"users": profiles, "total": len(profiles)})
}

func (h *SocialHTTPHandler) SearchProfiles(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", h.config.ProfileListLimit))
	profiles, err := h.profiles.SearchProfiles(c.UserContext(), c.Query("q"), limit)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"users": profiles, "total": len(profiles)})
}

func (h *SocialHTTPHandler) UpdateProfile(c *fiber.Ctx) error {
	req := usecase.UpdateProfileRequest{
		Name: c.FormValue("name"),
		Bio:  c.FormValue("bio"),
	}

	if fileHeader, err := c.FormFile("avatar"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid avatar file"})
		}
		defer file.Close()
		req.Avatar = file
		req.ContentType = fileHeader.Header.Get("Content-Type")
	}

	profile, err := h.profiles.UpdateProfile(c.UserContext(), req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(profile)
}

// Social graph handlers

func (h *SocialHTTPHandler) Follow(c *fiber.Ctx) error {
	profile, err := h.graph.Follow(c.UserContext(), c.Params("userId"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(profile)
}

func (h *SocialHTTPHandler) Unfollow(c *fiber.Ctx) error {
	profile, err := h.graph.Unfollow(c.UserContext(), c.Params("userId"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(profile)
}

func (h *SocialHTTPHandler) IsFollowing(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"following": h.graph.IsFollowing(c.UserContext(), c.Params("userId")),
	})
}

func (h *SocialHTTPHandler) FollowerCount(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"count": h.graph.FollowerCount(c.UserContext(), c.Params("userId")),
	})
}

func (h *SocialHTTPHandler) FollowingCount(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"count": h.graph.FollowingCount(c.UserContext(), c.Params("userId")),
	})
}

// Post handlers

func (h *SocialHTTPHandler) CreatePost(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Post image file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post image file"})
	}
	defer file.Close()

	post, err := h.posts.CreatePost(c.UserContext(), usecase.CreatePostRequest{
		Caption:     c.FormValue("caption"),
		Location:    c.FormValue("location"),
		Tags:        c.FormValue("tags"),
		File:        file,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *SocialHTTPHandler) UpdatePost(c *fiber.Ctx) error {
	req := usecase.UpdatePostRequest{
		PostID:   c.Params("postId"),
		Caption:  c.FormValue("caption"),
		Location: c.FormValue("location"),
		Tags:     c.FormValue("tags"),
	}

	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post image file"})
		}
		defer file.Close()
		req.File = file
		req.ContentType = fileHeader.Header.Get("Content-Type")
	}

	post, err := h.posts.UpdatePost(c.UserContext(), req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(post)
}

func (h *SocialHTTPHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.posts.DeletePost(c.UserContext(), c.Params("postId")); err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

func (h *SocialHTTPHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.posts.GetPostByID(c.UserContext(), c.Params("postId"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(post)
}

func (h *SocialHTTPHandler) GetRecentPosts(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", h.config.RecentPostsLimit))
	posts, err := h.posts.GetRecentPosts(c.UserContext(), limit)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts, "total": len(posts)})
}

func (h *SocialHTTPHandler) GetUserPosts(c *fiber.Ctx) error {
	posts, err := h.posts.GetUserPosts(c.UserContext(), c.Params("userId"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts, "total": len(posts)})
}

func (h *SocialHTTPHandler) SearchPosts(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", h.config.RecentPostsLimit))
	posts, err := h.posts.SearchPosts(c.UserContext(), c.Query("q"), limit)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts, "total": len(posts)})
}

func (h *SocialHTTPHandler) GetInfinitePosts(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", h.config.InfinitePageLimit))
	posts, err := h.posts.GetInfinitePosts(c.UserContext(), c.Query("cursor"), limit)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts, "total": len(posts)})
}

func (h *SocialHTTPHandler) LikePost(c *fiber.Ctx) error {
	post, err := h.posts.LikePost(c.UserContext(), c.Params("postId"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(post)
}

func (h *SocialHTTPHandler) UnlikePost(c *fiber.Ctx) error {
	post, err := h.posts.UnlikePost(c.UserContext(), c.Params("postId"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(post)
}

func (h *SocialHTTPHandler) SavePost(c *fiber.Ctx) error {
	save, err := h.posts.SavePost(c.UserContext(), c.Params("postId"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(save)
}

func (h *SocialHTTPHandler) UnsavePost(c *fiber.Ctx) error {
	if err := h.posts.UnsavePost(c.UserContext(), c.Params("saveId")); err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post unsaved"})
}

func (h *SocialHTTPHandler) GetSavedPosts(c *fiber.Ctx) error {
	saves, err := h.posts.GetSavedPosts(c.UserContext())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"saves": saves, "total": len(saves)})
}

// Comment handlers

type createCommentRequest struct {
	Text   string `json:"text"`
	PostID string `json:"postId"`
}

func (h *SocialHTTPHandler) CreateComment(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	comment, err := h.comments.Create(c.UserContext(), req.Text, req.PostID)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *SocialHTTPHandler) ListComments(c *fiber.Ctx) error {
	comments, err := h.comments.List(c.UserContext())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments, "total": len(comments)})
}

func (h *SocialHTTPHandler) ListPostComments(c *fiber.Ctx) error {
	comments, err := h.comments.ListByPost(c.UserContext(), c.Params("postId"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments, "total": len(comments)})
}

type editCommentRequest struct {
	Text string `json:"text"`
}

func (h *SocialHTTPHandler) EditComment(c *fiber.Ctx) error {
	var req editCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	comment, err := h.comments.Edit(c.UserContext(), c.Params("commentId"), req.Text)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(comment)
}

func (h *SocialHTTPHandler) DeleteComment(c *fiber.Ctx) error {
	if err := h.comments.Delete(c.UserContext(), c.Params("commentId")); err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}

// Activity handlers

func (h *SocialHTTPHandler) GetActivity(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	limit := int64(c.QueryInt("limit", 50))
	events, err := h.activity.Recent(c.UserContext(), userID, limit)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"events": events, "total": len(events)})
}

// errorResponse maps domain errors to HTTP status codes.
func (h *SocialHTTPHandler) errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrIdentityMissing):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	case apperrors.IsNotFound(err) ||
		errors.Is(err, apperrors.ErrProfileNotFound) ||
		errors.Is(err, apperrors.ErrPostNotFound) ||
		errors.Is(err, apperrors.ErrCommentNotFound) ||
		errors.Is(err, apperrors.ErrSaveNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsPartialWrite(err):
		h.log.WithContext(c.UserContext()).Errorf("partial write surfaced to client: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	default:
		h.log.WithContext(c.UserContext()).Errorf("internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
