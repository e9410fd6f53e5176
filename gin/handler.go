package gin

import (
	"errors"
	"net/http"

	"github.com/fwojciec/tutor"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// askRequest is the JSON body of POST /ask. Task, question and language are
// pointers so that an absent key can be told apart from an empty value.
type askRequest struct {
	Task     *string `json:"task"`
	Question *string `json:"question"`
	Language *string `json:"language"`
	Code     string  `json:"code"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "IE-Fixxy backend is running!"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// handleAsk always answers 200 once the body is well formed. Unsupported
// tasks and upstream failures are reported in the answer text.
func (s *Server) handleAsk(c *gin.Context) {
	var body askRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	switch {
	case body.Task == nil:
		c.JSON(http.StatusBadRequest, errorResponse{Error: "task is required"})
		return
	case body.Question == nil:
		c.JSON(http.StatusBadRequest, errorResponse{Error: "question is required"})
		return
	}

	req := tutor.Request{
		Task:     tutor.Task(*body.Task),
		Question: *body.Question,
		Language: tutor.DefaultLanguage,
		Code:     body.Code,
	}
	if body.Language != nil {
		req.Language = *body.Language
	}
	reqID := zap.String(requestIDKey, c.GetString(requestIDKey))

	ans, err := s.tutor.Ask(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, tutor.ErrUnsupportedTask) {
			s.logger.Info("unsupported task", zap.String("task", *body.Task), reqID)
		} else {
			s.logger.Error("completion failed", zap.String("task", *body.Task), zap.Error(err), reqID)
		}
		c.JSON(http.StatusOK, askResponse{Answer: tutor.ErrorAnswer(err).Text})
		return
	}

	if ans.StopReason == tutor.StopLength {
		s.logger.Warn("answer truncated at max tokens", zap.String("task", *body.Task), reqID)
	}
	if s.checker != nil {
		if kinds := s.checker.Residue(ans.Text); len(kinds) > 0 {
			s.logger.Debug("markup left in answer", zap.Strings("kinds", kinds), reqID)
		}
	}
	c.JSON(http.StatusOK, askResponse{Answer: ans.Text})
}
