package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ian-shakespeare/liblox/internal/interpret"
	"github.com/labstack/echo/v4"
)

type Router struct {
	e      *echo.Echo
	logger *slog.Logger
}

func NewRouter(e *echo.Echo, logger *slog.Logger) *Router {
	return &Router{
		e:      e,
		logger: logger,
	}
}

func (r *Router) Bind() {
	r.e.GET("/health", r.healthHandler)
	r.e.POST("/scan", r.scanHandler)
	r.e.POST("/parse", r.parseHandler)
	r.e.POST("/eval", r.evalHandler)
}

type SourceRequest struct {
	Source string `json:"source"`
}

type TokenResponse struct {
	Type   string `json:"type"`
	Lexeme string `json:"lexeme"`
	Line   int    `json:"line"`
}

type DiagnosticResponse struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line"`
	Context string `json:"context,omitempty"`
	Message string `json:"message,omitempty"`
	Text    string `json:"text"`
}

type EvalResponse struct {
	Output string              `json:"output"`
	Error  *DiagnosticResponse `json:"error,omitempty"`
}

func (r *Router) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (r *Router) scanHandler(c echo.Context) error {
	req, err := bindSource(c)
	if err != nil {
		return err
	}

	tokens, err := interpret.Scan(req.Source)
	if err != nil {
		return diagnostic(c, err)
	}

	resp := make([]TokenResponse, 0, len(tokens))
	for _, token := range tokens {
		resp = append(resp, TokenResponse{
			Type:   token.Type.String(),
			Lexeme: token.Lexeme,
			Line:   token.Line,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"tokens": resp})
}

func (r *Router) parseHandler(c echo.Context) error {
	req, err := bindSource(c)
	if err != nil {
		return err
	}

	tokens, err := interpret.Scan(req.Source)
	if err != nil {
		return diagnostic(c, err)
	}
	statements, err := interpret.Parse(tokens)
	if err != nil {
		return diagnostic(c, err)
	}

	rendered := make([]string, 0, len(statements))
	for _, stmt := range statements {
		if s, ok := stmt.(*interpret.ExpressionStmt); ok {
			rendered = append(rendered, interpret.Render(s.Expression))
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"statements": rendered})
}

func (r *Router) evalHandler(c echo.Context) error {
	req, err := bindSource(c)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	runner := interpret.NewRunner(&out, r.logger.With("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))
	if err := runner.Run(req.Source); err != nil {
		var diag *interpret.Error
		if !errors.As(err, &diag) {
			return err
		}
		return c.JSON(http.StatusUnprocessableEntity, EvalResponse{
			Output: out.String(),
			Error:  toDiagnosticResponse(diag),
		})
	}
	return c.JSON(http.StatusOK, EvalResponse{Output: out.String()})
}

func bindSource(c echo.Context) (*SourceRequest, error) {
	var req SourceRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "request body must be JSON with a source field")
	}
	return &req, nil
}

func diagnostic(c echo.Context, err error) error {
	var diag *interpret.Error
	if !errors.As(err, &diag) {
		return err
	}
	return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": toDiagnosticResponse(diag)})
}

func toDiagnosticResponse(diag *interpret.Error) *DiagnosticResponse {
	return &DiagnosticResponse{
		Kind:    diag.Kind(),
		Line:    diag.Line,
		Context: diag.Context,
		Message: diag.Message,
		Text:    diag.Error(),
	}
}
