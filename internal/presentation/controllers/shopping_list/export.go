package shopping_list

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const exportCacheTTL = 10 * time.Minute

type ExportShoppingListController struct {
	FindShoppingListByIdAndUserIdRepository usecase.FindShoppingListByIdAndUserIdRepository
}

func NewExportShoppingListController(findShoppingListByIdAndUserId usecase.FindShoppingListByIdAndUserIdRepository) *ExportShoppingListController {
	return &ExportShoppingListController{
		FindShoppingListByIdAndUserIdRepository: findShoppingListByIdAndUserId,
	}
}

// Handle renders the list as CSV or XLSX. The rendered bytes are cached
// in redis keyed by list id plus updated_at, so downloads of an
// unchanged list are served from cache and any edit naturally misses.
func (c *ExportShoppingListController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	listId, err := primitive.ObjectIDFromHex(r.Req.PathValue("listId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid shopping list ID format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	format := r.UrlParams.Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "format must be csv or xlsx",
		}, http.StatusBadRequest)
	}

	shoppingList, err := c.FindShoppingListByIdAndUserIdRepository.Find(listId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding shopping list",
		}, http.StatusInternalServerError)
	}

	if shoppingList == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "shopping list not found",
		}, http.StatusNotFound)
	}

	redisURL := os.Getenv("REDIS_URL")
	cacheKey := fmt.Sprintf("shopping-list-export:%s:%d:%s", shoppingList.Id.Hex(), shoppingList.UpdatedAt.Unix(), format)

	if redisURL != "" {
		cached, err := redis_repository.FindBytesByKey(redisURL, cacheKey, format == "xlsx")
		if err == nil && cached != nil {
			return helpers.CreateFileResponse(cached, exportContentType(format), http.StatusOK)
		}
	}

	rows := exportRows(shoppingList)

	if format == "xlsx" {
		file, err := buildExcelExport(rows)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when building export",
			}, http.StatusInternalServerError)
		}

		buf := new(bytes.Buffer)
		if err := file.Write(buf); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when building export",
			}, http.StatusInternalServerError)
		}

		if redisURL != "" {
			redis_repository.SaveExcelToRedis(redisURL, cacheKey, file, exportCacheTTL)
		}

		return helpers.CreateFileResponse(buf.Bytes(), exportContentType(format), http.StatusOK)
	}

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when building export",
			}, http.StatusInternalServerError)
		}
	}
	writer.Flush()

	if redisURL != "" {
		redis_repository.SaveCSVToRedis(redisURL, cacheKey, rows, exportCacheTTL)
	}

	return helpers.CreateFileResponse(buf.Bytes(), exportContentType(format), http.StatusOK)
}

func exportContentType(format string) string {
	if format == "xlsx" {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

func exportRows(shoppingList *models.ShoppingList) [][]string {
	rows := [][]string{{"Item", "Quantity", "Unit", "Notes", "Completed"}}
	for _, item := range shoppingList.Items {
		unit := ""
		if item.Unit != nil {
			unit = *item.Unit
		}
		notes := ""
		if item.Notes != nil {
			notes = *item.Notes
		}
		rows = append(rows, []string{
			item.ItemName,
			item.Quantity.String(),
			unit,
			notes,
			strconv.FormatBool(item.IsCompleted),
		})
	}
	return rows
}

func buildExcelExport(rows [][]string) (*excelize.File, error) {
	file := excelize.NewFile()

	sheet := file.GetSheetName(0)
	if err := file.SetSheetName(sheet, "Shopping List"); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := file.SetSheetRow("Shopping List", cell, &row); err != nil {
			return nil, err
		}
	}

	return file, nil
}
