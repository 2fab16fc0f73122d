package recipe

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportRecipesController struct {
	CreateRecipeRepository usecase.CreateRecipeRepository
}

func NewImportRecipesController(createRecipe usecase.CreateRecipeRepository) *ImportRecipesController {
	return &ImportRecipesController{
		CreateRecipeRepository: createRecipe,
	}
}

type importRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type ImportRecipesResponse struct {
	Imported []*models.Recipe `json:"imported"`
	Errors   []importRowError `json:"errors"`
}

const importLimit = 1000

// Handle accepts a multipart form with a CSV or XLSX file of recipes.
// Expected columns: title, servings, description, instructions,
// prepMinutes, cookMinutes, ingredients. The ingredients cell holds
// lines in the form "name|quantity|unit|notes" separated by ";".
// Rows that fail to parse are reported individually, the rest are
// imported.
func (c *ImportRecipesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	rows, err := parseImportFile(r.Req)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error parsing import file: " + err.Error(),
		}, http.StatusBadRequest)
	}

	if len(rows) > importLimit {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "maximum of " + strconv.Itoa(importLimit) + " recipes per import",
		}, http.StatusBadRequest)
	}

	recipes := make([]*models.Recipe, 0, len(rows))
	rowErrors := make([]importRowError, 0)
	for i, row := range rows {
		recipe, err := convertImportedRecipe(row, userId)
		if err != nil {
			// header is row 1, so data rows start at 2
			rowErrors = append(rowErrors, importRowError{Row: i + 2, Error: err.Error()})
			continue
		}
		recipes = append(recipes, recipe)
	}

	imported := []*models.Recipe{}
	if len(recipes) > 0 {
		imported, err = c.CreateRecipeRepository.CreateMany(recipes)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "error creating recipes: " + err.Error(),
			}, http.StatusInternalServerError)
		}
	}

	return helpers.CreateResponse(&ImportRecipesResponse{
		Imported: imported,
		Errors:   rowErrors,
	}, http.StatusCreated)
}

func convertImportedRecipe(row map[string]string, userId primitive.ObjectID) (*models.Recipe, error) {
	title := strings.TrimSpace(row["title"])
	if title == "" {
		return nil, fmt.Errorf("missing title")
	}

	servings, err := strconv.Atoi(strings.TrimSpace(row["servings"]))
	if err != nil || servings < 1 {
		return nil, fmt.Errorf("invalid servings: %q", row["servings"])
	}

	prepMinutes, cookMinutes := 0, 0
	if v := strings.TrimSpace(row["prepMinutes"]); v != "" {
		if prepMinutes, err = strconv.Atoi(v); err != nil || prepMinutes < 0 {
			return nil, fmt.Errorf("invalid prepMinutes: %q", v)
		}
	}
	if v := strings.TrimSpace(row["cookMinutes"]); v != "" {
		if cookMinutes, err = strconv.Atoi(v); err != nil || cookMinutes < 0 {
			return nil, fmt.Errorf("invalid cookMinutes: %q", v)
		}
	}

	ingredients, err := parseIngredientCell(row["ingredients"])
	if err != nil {
		return nil, err
	}

	return &models.Recipe{
		UserId:       userId,
		Title:        title,
		Description:  strings.TrimSpace(row["description"]),
		Instructions: strings.TrimSpace(row["instructions"]),
		PrepMinutes:  prepMinutes,
		CookMinutes:  cookMinutes,
		Servings:     servings,
		Ingredients:  ingredients,
	}, nil
}

// parseIngredientCell splits "name|quantity|unit|notes;name|quantity|unit"
// into ingredient lines. Notes are optional per line.
func parseIngredientCell(cell string) ([]models.RecipeIngredient, error) {
	lines := strings.Split(cell, ";")
	ingredients := make([]models.RecipeIngredient, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			return nil, fmt.Errorf("malformed ingredient %q, expected name|quantity|unit[|notes]", line)
		}

		name := strings.TrimSpace(parts[0])
		unit := strings.TrimSpace(parts[2])
		if name == "" || unit == "" {
			return nil, fmt.Errorf("ingredient %q is missing a name or unit", line)
		}

		quantity, err := models.NewDecimalFromString(strings.TrimSpace(parts[1]))
		if err != nil || !quantity.IsPositive() {
			return nil, fmt.Errorf("invalid quantity for ingredient %q", name)
		}

		ingredient := models.RecipeIngredient{
			IngredientName: name,
			UnitName:       unit,
			Quantity:       quantity,
		}
		if len(parts) > 3 {
			notes := strings.TrimSpace(parts[3])
			if notes != "" {
				ingredient.Notes = &notes
			}
		}
		ingredients = append(ingredients, ingredient)
	}

	if len(ingredients) == 0 {
		return nil, fmt.Errorf("recipe has no ingredients")
	}
	return ingredients, nil
}

func parseImportFile(r *http.Request) ([]map[string]string, error) {
	// up to ~32 MB in memory before spilling to a temp file
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("missing 'file' field in form-data: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".csv":
		return parseCSVRows(file)
	case ".xlsx", ".xlsm":
		return parseXLSXRows(file)
	default:
		return nil, fmt.Errorf("unsupported file type %s", ext)
	}
}

func parseCSVRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	headers, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.ReplaceAll(h, "\"", ""))
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv row: %w", err)
		}
		row := make(map[string]string)
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseXLSXRows(r multipart.File) ([]map[string]string, error) {
	// excelize needs an io.ReadSeeker, so buffer the upload
	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, fmt.Errorf("copy xlsx: %w", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rowsIter, err := f.Rows(sheet)
	if err != nil {
		return nil, err
	}
	if !rowsIter.Next() {
		return nil, fmt.Errorf("xlsx empty sheet")
	}
	headers, _ := rowsIter.Columns()
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []map[string]string
	for rowsIter.Next() {
		cols, _ := rowsIter.Columns()
		row := make(map[string]string)
		for i, h := range headers {
			if i < len(cols) {
				row[h] = cols[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
