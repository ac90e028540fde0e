package echoapi

import (
	"net/http"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edubridge/edubridge/core"
)

var errHTTPForbidden = echo.NewHTTPError(http.StatusForbidden, "You do not have permission to view this page.")

// newHTTPErrorHandler renders errors as HTML pages and reports unexpected
// failures before deciding whether the service can keep running.
func (s *Server) newHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)

		switch cause := errors.Cause(err).(type) {
		case *echo.HTTPError:
			code = cause.Code
			if m, ok := cause.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(code)
			}
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			msg = "The submitted form is invalid."
		case *core.ValidationError:
			code = http.StatusBadRequest
			msg = cause.Error()
		default:
			if errors.Cause(err) == core.ErrNotFound {
				code = http.StatusNotFound
				msg = http.StatusText(code)
				break
			}

			if usr, ok := currentUser(ctx); ok {
				s.deps.Logger.Error("request failed", err, usr)
			} else {
				s.deps.Logger.Error("request failed", err)
			}

			if core.IsShutdown(err) {
				s.deps.Shutdown <- syscall.SIGTERM
			}
		}

		td := s.newTemplateData(ctx)
		td.Data = map[string]interface{}{"Code": code, "Message": msg}
		if rerr := ctx.Render(code, "error", td); rerr != nil {
			_ = ctx.String(code, msg)
		}
	}
}

// renderFormErrors re-renders a form page with per-field messages. data is
// whatever the page needs besides the form itself.
func (s *Server) renderFormErrors(ctx echo.Context, page string, form, data interface{}, err error) error {
	fields := make(map[string]string)

	switch cause := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		for _, fe := range cause {
			fields[fe.Field()] = fe.Translate(s.deps.Translator)
		}
	case *core.ValidationError:
		for _, fe := range cause.Fields {
			fields[fe.Field] = fe.Error
		}
	default:
		return err
	}

	td := s.newTemplateData(ctx)
	td.Errors = fields
	td.Form = form
	td.Data = data
	return ctx.Render(http.StatusBadRequest, page, td)
}
