package site

import "github.com/gofiber/fiber/v2"

// SetupSiteRoutes wires the public marketing pages and the result
// checker page. None of these touch the database directly; the result
// checker posts to /api/results/check.
func SetupSiteRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("site/home", fiber.Map{
			"Title":       "Hemeson Academy",
			"CurrentPage": "home",
		}, "layouts/public")
	})

	app.Get("/about", func(c *fiber.Ctx) error {
		return c.Render("site/about", fiber.Map{
			"Title":       "About Us - Hemeson Academy",
			"CurrentPage": "about",
		}, "layouts/public")
	})

	app.Get("/admissions", func(c *fiber.Ctx) error {
		return c.Render("site/admissions", fiber.Map{
			"Title":       "Admissions - Hemeson Academy",
			"CurrentPage": "admissions",
		}, "layouts/public")
	})

	app.Get("/results", func(c *fiber.Ctx) error {
		return c.Render("site/results", fiber.Map{
			"Title":       "Check Result - Hemeson Academy",
			"CurrentPage": "results",
		}, "layouts/public")
	})
}
