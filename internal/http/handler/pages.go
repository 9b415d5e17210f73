package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"nameapi/internal/model"
	"nameapi/internal/service"
)

// Page route names.
const (
	RouteNameList   = "name_list"
	RouteNameUpdate = "name_update"
	RouteNameDelete = "name_delete"
)

type nameRow struct {
	ID        int64
	Name      string
	LastName  string
	UpdateURL string
	DeleteURL string
}

type nameForm struct {
	Name     string
	LastName string
	Errors   map[string]string
}

func routeURL(c *fiber.Ctx, route string, id int64) string {
	params := fiber.Map{}
	if id > 0 {
		params["pk"] = id
	}
	u, err := c.GetRouteURL(route, params)
	if err != nil {
		return ""
	}
	return u
}

func redirectToList(c *fiber.Ctx) error {
	return c.RedirectToRoute(RouteNameList, fiber.Map{}, fiber.StatusFound)
}

// loadRecord resolves :pk. It reports false after writing a response for
// missing records and store failures.
func loadRecord(c *fiber.Ctx, svc service.NameService) (*model.Name, bool, error) {
	id, ok := parseID(c, "pk")
	if !ok {
		return nil, false, renderNotFound(c)
	}
	n, err := svc.Get(c.UserContext(), id)
	if errors.Is(err, service.ErrNotFound) {
		return nil, false, renderNotFound(c)
	}
	if err != nil {
		return nil, false, fiber.ErrInternalServerError
	}
	return n, true, nil
}

func renderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("names/not_found", fiber.Map{
		"Title":   "Not found",
		"ListURL": routeURL(c, RouteNameList, 0),
	}, layoutMain)
}

// NameListPage renders every record.
func NameListPage(svc service.NameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return fiber.ErrInternalServerError
		}

		rows := make([]nameRow, 0, len(items))
		for _, n := range items {
			rows = append(rows, nameRow{
				ID:        n.ID,
				Name:      n.Name,
				LastName:  n.LastName,
				UpdateURL: routeURL(c, RouteNameUpdate, n.ID),
				DeleteURL: routeURL(c, RouteNameDelete, n.ID),
			})
		}
		return c.Render("names/list", fiber.Map{
			"Title": "Names",
			"Names": rows,
		}, layoutMain)
	}
}

// NameUpdatePage shows the edit form on GET. On POST it saves valid input and
// redirects to the list, or re-renders the form with inline errors.
func NameUpdatePage(svc service.NameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		record, ok, err := loadRecord(c, svc)
		if !ok {
			return err
		}

		form := nameForm{Name: record.Name, LastName: record.LastName}
		if c.Method() == fiber.MethodPost {
			form = nameForm{Name: c.FormValue("name"), LastName: c.FormValue("last_name")}

			_, err := svc.Update(c.UserContext(), record.ID, service.NameInput{Name: form.Name, LastName: form.LastName})
			var vErr *service.ValidationError
			switch {
			case err == nil:
				return redirectToList(c)
			case errors.As(err, &vErr):
				form.Errors = vErr.Fields
			case errors.Is(err, service.ErrNotFound):
				return renderNotFound(c)
			default:
				return fiber.ErrInternalServerError
			}
		}

		return c.Render("names/update", fiber.Map{
			"Title":     "Edit name",
			"Record":    record,
			"Form":      form,
			"ActionURL": routeURL(c, RouteNameUpdate, record.ID),
			"ListURL":   routeURL(c, RouteNameList, 0),
		}, layoutMain)
	}
}

// NameDeletePage asks for confirmation on GET and deletes on POST.
func NameDeletePage(svc service.NameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		record, ok, err := loadRecord(c, svc)
		if !ok {
			return err
		}

		if c.Method() == fiber.MethodPost {
			err := svc.Delete(c.UserContext(), record.ID)
			// a concurrent delete already did the job
			if err != nil && !errors.Is(err, service.ErrNotFound) {
				return fiber.ErrInternalServerError
			}
			return redirectToList(c)
		}

		return c.Render("names/delete", fiber.Map{
			"Title":     "Delete name",
			"Record":    record,
			"ActionURL": routeURL(c, RouteNameDelete, record.ID),
			"ListURL":   routeURL(c, RouteNameList, 0),
		}, layoutMain)
	}
}
