package response

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const DefaultAppName = "clientesApp"

// Alerts writes the X-<app>-alert, X-<app>-error and X-<app>-params headers that
// client UIs turn into notifications.
type Alerts struct {
	App string
}

func NewAlerts(app string) Alerts {
	app = strings.TrimSpace(app)
	if app == "" {
		app = DefaultAppName
	}
	return Alerts{App: app}
}

func (a Alerts) app() string {
	if a.App == "" {
		return DefaultAppName
	}
	return a.App
}

func (a Alerts) AlertHeader() string  { return "X-" + a.app() + "-alert" }
func (a Alerts) ErrorHeader() string  { return "X-" + a.app() + "-error" }
func (a Alerts) ParamsHeader() string { return "X-" + a.app() + "-params" }

func (a Alerts) alert(c *gin.Context, msg, param string) {
	c.Header(a.AlertHeader(), msg)
	c.Header(a.ParamsHeader(), url.QueryEscape(param))
}

func (a Alerts) Created(c *gin.Context, entity, id string) {
	a.alert(c, "A new "+entity+" is created with identifier "+id, id)
}

func (a Alerts) Updated(c *gin.Context, entity, id string) {
	a.alert(c, "A "+entity+" is updated with identifier "+id, id)
}

func (a Alerts) Deleted(c *gin.Context, entity, id string) {
	a.alert(c, "A "+entity+" is deleted with identifier "+id, id)
}

func (a Alerts) Failure(c *gin.Context, entity, code string) {
	c.Header(a.ErrorHeader(), "error."+code)
	c.Header(a.ParamsHeader(), entity)
}
