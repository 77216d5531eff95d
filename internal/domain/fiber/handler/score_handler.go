package handler

import (
	"io"
	"strings"
	"time"

	"github.com/Shank312/ml-resume-scorer/internal/dto"
	"github.com/Shank312/ml-resume-scorer/internal/middleware"
	"github.com/Shank312/ml-resume-scorer/internal/usecase"
	"github.com/Shank312/ml-resume-scorer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ScoreHandler struct {
	uc *usecase.ScoreUsecase
}

const maxUploadBytes = 5 * 1024 * 1024

func NewScoreHandler(uc *usecase.ScoreUsecase) *ScoreHandler {
	return &ScoreHandler{uc: uc}
}

func (h *ScoreHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/score/pdf", middleware.RateLimiter(5, 10*time.Second), h.ScorePDF)
	app.Post("/score/json", h.ScoreJSON)
}

// ScorePDF handles the multipart form: a resume_pdf file plus an optional
// github_url field. Only validation failures produce a non-200; extraction
// problems score an empty resume instead.
func (h *ScoreHandler) ScorePDF(c *fiber.Ctx) error {
	file, err := c.FormFile("resume_pdf")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume_pdf file is required",
		}, err)
	}

	if !strings.Contains(file.Header.Get("Content-Type"), "pdf") {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume_pdf must be a PDF",
		})
	}

	if file.Size > maxUploadBytes {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume_pdf file size is too large (max 5MB)",
		})
	}

	f, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read resume_pdf upload",
		}, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read resume_pdf upload",
		}, err)
	}

	resumeText := util.ExtractPDFText(data)
	githubURL := c.FormValue("github_url")

	return c.JSON(h.uc.Score(c.UserContext(), resumeText, githubURL))
}

// ScoreJSON handles the JSON body variant; resume_text_override is
// required, github_url may come from the body or the query string.
func (h *ScoreHandler) ScoreJSON(c *fiber.Ctx) error {
	var req dto.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON body",
		}, err)
	}

	if strings.TrimSpace(req.ResumeTextOverride) == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume_text_override is required for JSON endpoint",
		})
	}

	githubURL := req.GithubURL
	if githubURL == "" {
		githubURL = c.Query("github_url")
	}

	return c.JSON(h.uc.Score(c.UserContext(), req.ResumeTextOverride, githubURL))
}
