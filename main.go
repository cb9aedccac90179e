package main

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/config"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/database"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/academic"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/auth"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/classes"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/dashboard"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/fees"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/results"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/scores"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/site"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/students"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/subjects"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/tokens"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/services"
)

// customErrorHandler renders error pages for page routes and JSON for
// API routes.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 5 && c.Path()[:5] == "/api/" {
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}

	// The error page stands alone; the shared layouts assume page
	// context that an error has no business carrying.
	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Page Not Found - Hemeson Academy",
			"ErrorCode":    "404",
			"ErrorTitle":   "Page Not Found",
			"ErrorMessage": "The page you are looking for does not exist.",
		}, "")
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Hemeson Academy",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		}, "")
	}
}

func main() {
	// Initialize configuration and database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.Reload(config.AppConfig.Env == "dev")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Public site + result checker
	site.SetupSiteRoutes(app)
	results.SetupResultsRoutes(app, config.GetDB())
	scores.SetupScoresRoutes(app, config.GetDB())

	// Back office
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app, config.GetDB())
	students.SetupStudentsRoutes(app)
	classes.SetupClassesRoutes(app, config.GetDB())
	subjects.SetupSubjectsRoutes(app, config.GetDB())
	academic.RegisterRoutes(app, config.GetDB())
	tokens.SetupTokensRoutes(app, config.GetDB())
	fees.SetupFeesRoutes(app, config.GetDB())

	log.Printf("Starting server on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
