package payoutController

import (
	"bytes"
	"io"
	"log"

	"paydash/bulkimport"
	"paydash/config"
	"paydash/database"
	"paydash/dispatch"
	"paydash/gateway"
	"paydash/middleware"
	"paydash/models"
	"paydash/payoutapi"
	"paydash/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// BulkUpload validates a beneficiary spreadsheet locally and forwards it
// to the backend only when every row passes. Validation errors are
// returned in full so the user can fix the sheet in one pass.
func BulkUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please select a file to upload", nil)
	}

	if err := bulkimport.CheckFileType(fileHeader.Header.Get("Content-Type")); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unable to read uploaded file", nil)
	}
	content, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unable to read uploaded file", nil)
	}

	sheet, err := bulkimport.Parse(bytes.NewReader(content))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, bulkimport.ErrNotSpreadsheet.Error(), nil)
	}

	result := bulkimport.Validate(sheet)
	if !result.Valid() {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, result.First(), fiber.Map{
			"errors":         result.Errors,
			"missingColumns": result.MissingColumns,
			"firstRows":      bulkimport.Preview(sheet.Rows, false),
			"lastRows":       bulkimport.Preview(sheet.Rows, true),
		})
	}

	profile := map[string]string{
		"beneficiaryAadhaarNumber": c.FormValue("beneficiaryAadhaarNumber"),
		"beneficiaryBankName":      c.FormValue("beneficiaryBankName"),
		"beneficiaryAddress":       c.FormValue("beneficiaryAddress"),
	}

	if _, err := utils.SaveUploadedFile(fileHeader, config.AppConfig.UploadDir); err != nil {
		log.Println("Failed to keep upload copy:", err)
	}

	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)
	dispatcher := gateway.DispatcherFor(sess)

	data, err := dispatcher.Do(dispatch.GroupBulkUpload, func() (interface{}, error) {
		return client.BulkUploadBeneficiaries(fileHeader.Filename, bytes.NewReader(content), profile)
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	if upload, ok := data.(*payoutapi.BulkUploadResult); ok {
		mirrorBulkBatch(upload, fileHeader.Filename, len(sheet.Rows))
	}

	refreshClient := gateway.NewClient(sess)
	dispatcher.Go(dispatch.GroupBeneficiaryList, func() (interface{}, error) {
		return refreshClient.BeneficiaryList(0, 10)
	})
	dispatcher.Go(dispatch.GroupBulkPaymentIDs, func() (interface{}, error) {
		return refreshClient.BulkBatchIDs(0, 10)
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bulk upload submitted!", data)
}

// BulkUploadTemplate streams the standardized spreadsheet template.
func BulkUploadTemplate(c *fiber.Ctx) error {
	content, err := bulkimport.WriteTemplate()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something Went Wrong", nil)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bulk-beneficiary-template.xlsx"`)
	return c.Send(content)
}

// mirrorBulkBatch records an accepted upload locally so decisions can be
// audited later. Skipped when no database is connected.
func mirrorBulkBatch(upload *payoutapi.BulkUploadResult, fileName string, totalRows int) {
	if database.Database.Db == nil || upload.TransactionID == "" {
		return
	}

	batch := models.BulkBatch{
		TransactionID: upload.TransactionID,
		ReferenceID:   uuid.NewString(),
		FileName:      fileName,
		TotalRows:     totalRows,
		Successful:    upload.Successful,
		Failed:        upload.Failed,
	}

	if err := database.Database.Db.Create(&batch).Error; err != nil {
		log.Println("Failed to record bulk batch:", err)
	}
}
