package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"s3gateway/internal/model"
	"s3gateway/internal/service"
)

// sampleRequest is the request body shared by the sample board endpoints.
type sampleRequest struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
}

func listSamples(svc service.SampleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sampleRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.List(c.UserContext(), req.Limit, req.Offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

func countSamples(svc service.SampleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		total, err := svc.Count(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"listCnt": total})
	}
}

func sampleInfo(svc service.SampleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := sampleID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		sample, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": sample})
	}
}

func insertSample(svc service.SampleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sampleRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		sample, err := svc.Create(c.UserContext(), &model.Sample{
			Title:   req.Title,
			Content: req.Content,
			Author:  req.Author,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": sample})
	}
}

func updateSample(svc service.SampleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sampleRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		err := svc.Update(c.UserContext(), &model.Sample{
			ID:      req.ID,
			Title:   req.Title,
			Content: req.Content,
			Author:  req.Author,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": req.ID})
	}
}

func deleteSample(svc service.SampleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := sampleID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// sampleID reads the target id from the JSON body, falling back to the query
// string for convenience.
func sampleID(c *fiber.Ctx) (int64, error) {
	var req sampleRequest
	if err := c.BodyParser(&req); err == nil && req.ID > 0 {
		return req.ID, nil
	}
	return strconv.ParseInt(c.Query("id"), 10, 64)
}
