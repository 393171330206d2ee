package handler

import (
	"bufio"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"s3gateway/internal/service"
)

// uploadObject handles multipart upload (field name: file) for an
// organization and responds with the generated file key.
func uploadObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		orgCode := c.FormValue("orgCode")
		if orgCode == "" {
			orgCode = c.Query("orgCode")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = fiber.MIMEOctetStream
		}

		key, err := svc.Upload(c.UserContext(), f, orgCode, fh.Filename, ct, fh.Size)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": key})
	}
}

// downloadObject streams one object back as an attachment.
func downloadObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Query("fileKey")

		rc, entry, err := svc.Download(c.UserContext(), key)
		if err != nil {
			return serviceError(c, err)
		}

		// The suggested filename is the key's final path segment.
		setAttachmentHeaders(c, path.Base(key), entry.ContentType, entry.Size)
		if entry.Size > 0 {
			// fasthttp closes the stream reader after the response is sent.
			return c.SendStream(rc, int(entry.Size))
		}
		return c.SendStream(rc)
	}
}

// downloadZip streams a zip archive of the requested keys, named after
// today's date. The archive is written directly to the response stream; a
// failure partway leaves a truncated archive on the wire.
func downloadZip(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Context().QueryArgs().PeekMulti("fileKey")
		keys := make([]string, 0, len(raw))
		for _, b := range raw {
			if k := string(b); k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			return c.SendStatus(fiber.StatusOK)
		}

		zipName := time.Now().Format("2006-01-02") + ".zip"
		setAttachmentHeaders(c, zipName, "application/zip", 0)

		ctx := c.UserContext()
		c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
			// Errors past this point cannot change the status line anymore.
			// The service has already logged the failing key.
			if err := svc.DownloadZip(ctx, keys, w); err != nil {
				return
			}
			_ = w.Flush()
		})
		return nil
	}
}

// presignObject responds with a temporary signed download URL.
func presignObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Query("fileKey")
		u, err := svc.Presign(c.UserContext(), key)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": u})
	}
}

// deleteObject removes one object by key.
func deleteObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Query("fileKey")
		if err := svc.Delete(c.UserContext(), key); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": key + " deleted"})
	}
}

// objectInfo responds with head-only metadata for one key.
func objectInfo(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Query("fileKey")
		entry, err := svc.Info(c.UserContext(), key)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": entry})
	}
}

// listObjects responds with every object under the org/date prefix.
func listObjects(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := svc.List(c.UserContext(), c.Query("orgCode"), c.Query("dateString"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": entries})
	}
}

// setAttachmentHeaders shapes the download response: content type with a
// generic binary fallback, content length when known, and a
// content-disposition attachment whose filename is percent-encoded so
// non-ASCII names survive the header.
func setAttachmentHeaders(c *fiber.Ctx, filename, contentType string, size int64) {
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	c.Set(fiber.HeaderContentType, contentType)
	if size > 0 {
		c.Set(fiber.HeaderContentLength, strconv.FormatInt(size, 10))
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s";`, encodeFilename(filename)))
	c.Set(fiber.HeaderAccessControlExposeHeaders, fiber.HeaderContentDisposition)
}

// encodeFilename percent-encodes a filename for the disposition header.
// Query escaping turns spaces into '+', which browsers do not decode inside
// filenames, so those are re-encoded as %20.
func encodeFilename(name string) string {
	return strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}
