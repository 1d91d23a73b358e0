package router

import (
	"github.com/labstack/echo/v4"

	aictrl "growsphere/pkg/ai/controllerImp"
	statectrl "growsphere/pkg/appstate/controllerImp"
	diagctrl "growsphere/pkg/diagnostics/controllerImp"
	healthctrl "growsphere/pkg/health/controllerImp"
	marketctrl "growsphere/pkg/market/controllerImp"
	planctrl "growsphere/pkg/plan/controller"
	plantctrl "growsphere/pkg/plant/controller"
	researchctrl "growsphere/pkg/research/controller"
	schedctrl "growsphere/pkg/schedule/controller"
	settingsctrl "growsphere/pkg/settings/controller"
	sprinklerctrl "growsphere/pkg/sprinkler/controllerImp"
)

type Controllers struct {
	Plants      plantctrl.PlantController
	Plans       planctrl.PlanController
	Schedule    schedctrl.ScheduleController
	Settings    settingsctrl.SettingsController
	Research    researchctrl.ResearchController
	State       *statectrl.StateCtrl
	Chat        *aictrl.ChatCtrl
	Sprinkler   *sprinklerctrl.SprinklerCtrl
	Market      *marketctrl.MarketCtrl
	Diagnostics *diagctrl.DiagnosticsCtrl
	Health      *healthctrl.HealthCtrl
}

func New(e *echo.Echo, c Controllers) *echo.Echo {
	e.GET("/health", c.Health.Health)

	e.GET("/plants", c.Plants.List)
	e.POST("/plants", c.Plants.Create)
	e.POST("/plants/restore-defaults", c.Plants.RestoreDefaults)
	e.GET("/plants/:id", c.Plants.Get)
	e.DELETE("/plants/:id", c.Plants.Delete)

	e.POST("/plants/:id/plan", c.Plans.Generate)
	e.GET("/plants/:id/calendar.xlsx", c.Plans.ExportXLSX)
	e.GET("/history", c.Plans.History)
	e.DELETE("/history", c.Plans.ClearHistory)

	e.GET("/schedule", c.Schedule.Preview)
	e.GET("/schedule/months", c.Schedule.Months)

	e.GET("/settings", c.Settings.Get)
	e.PUT("/settings", c.Settings.Update)
	e.DELETE("/data", c.Settings.ClearData)

	e.GET("/state", c.State.Get)
	e.POST("/state/actions", c.State.Dispatch)

	r := e.Group("/research")
	r.GET("", c.Research.Lookup)
	r.POST("/import", c.Research.Import)
	r.GET("/link", c.Research.Link)
	r.GET("/history", c.Research.History)

	e.GET("/chat", c.Chat.Transcript)
	e.POST("/chat", c.Chat.Send)
	e.DELETE("/chat", c.Chat.Reset)

	s := e.Group("/sprinkler")
	s.GET("", c.Sprinkler.Status)
	s.POST("/start", c.Sprinkler.Start)
	s.POST("/stop", c.Sprinkler.Stop)
	s.PUT("/auto", c.Sprinkler.SetAuto)

	m := e.Group("/market")
	m.GET("/countries", c.Market.Countries)
	m.GET("/prices", c.Market.Prices)
	m.POST("/prices/refresh", c.Market.Refresh)

	d := e.Group("/debug")
	d.POST("/tests", c.Diagnostics.RunTests)
	d.GET("/export", c.Diagnostics.Export)
	d.POST("/test-plant", c.Diagnostics.AddTestPlant)
	d.POST("/error", c.Diagnostics.SimulateError)
	return e
}
