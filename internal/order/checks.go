package order

import (
	"strings"

	"dinette/internal/domain"
	apperrors "dinette/internal/errors"
	"dinette/internal/pipeline"
)

// fieldChecks is the shared field portion of the order pipelines: presence
// checks first, then the non-empty check, then the dish list checks.
func fieldChecks() []pipeline.Check {
	return []pipeline.Check{
		pipeline.HasField("deliverTo"),
		pipeline.HasField("mobileNumber"),
		pipeline.HasField("dishes"),
		pipeline.NonEmptyString("mobileNumber"),
		dishesValid,
		dishQuantitiesValid,
	}
}

func createChecks() []pipeline.Check {
	return fieldChecks()
}

// updateChecks appends the identity check and the lifecycle gates. The
// delivered guard closes over the stored order located by the existence
// check, so it rejects any change to an order that has already been
// delivered, whatever status the request submits.
func updateChecks(stored domain.Order) []pipeline.Check {
	return append(fieldChecks(),
		idMatchesRoute,
		statusValid,
		frozenGuard(stored),
	)
}

// dishesValid requires a non-empty dishes array whose every line item has an
// integer price >= 1. The reference behavior of only price-checking the
// first item was a bug; here every item is checked.
func dishesValid(req *pipeline.Request) error {
	items, ok := req.Data["dishes"].([]interface{})
	if !ok || len(items) == 0 {
		return apperrors.NewValidationError("Order must include at least one dish")
	}
	for i, item := range items {
		line, _ := item.(map[string]interface{})
		if !pipeline.IsPositiveInt(line["price"]) {
			return apperrors.NewValidationError(
				"Dish %d must have a price that is an integer greater than 0", i,
			)
		}
	}
	return nil
}

func dishQuantitiesValid(req *pipeline.Request) error {
	items, _ := req.Data["dishes"].([]interface{})
	for i, item := range items {
		line, _ := item.(map[string]interface{})
		if !pipeline.IsPositiveInt(line["quantity"]) {
			return apperrors.NewValidationError(
				"Dish %d must have a quantity that is an integer greater than 0", i,
			)
		}
	}
	return nil
}

func idMatchesRoute(req *pipeline.Request) error {
	id, supplied := pipeline.BodyID(req)
	if !supplied || id == req.RouteID {
		return nil
	}
	return apperrors.NewValidationError(
		"Order id does not match route id. Order: %s, Route: %s.", id, req.RouteID,
	)
}

func statusValid(req *pipeline.Request) error {
	status := pipeline.String(req.Data["status"])
	if !domain.ValidStatus(status) {
		return apperrors.NewValidationError(
			"Order must have a status of %s", strings.Join(domain.Statuses, ", "),
		)
	}
	return nil
}

func frozenGuard(stored domain.Order) pipeline.Check {
	return func(*pipeline.Request) error {
		if stored.Frozen() {
			return apperrors.NewValidationError("A delivered order cannot be changed")
		}
		return nil
	}
}
