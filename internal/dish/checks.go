package dish

import (
	apperrors "dinette/internal/errors"
	"dinette/internal/pipeline"
)

var requiredFields = []string{"name", "description", "price", "image_url"}

// fieldChecks builds the shared field portion of the dish pipelines:
// presence for every required field first, then the non-empty checks for the
// string fields, then price validity.
func fieldChecks() []pipeline.Check {
	checks := make([]pipeline.Check, 0, 8)
	for _, f := range requiredFields {
		checks = append(checks, pipeline.HasField(f))
	}
	for _, f := range []string{"name", "description", "image_url"} {
		checks = append(checks, pipeline.NonEmptyString(f))
	}
	return append(checks, priceValid)
}

func createChecks() []pipeline.Check {
	return fieldChecks()
}

func updateChecks() []pipeline.Check {
	return append(fieldChecks(), idMatchesRoute)
}

func priceValid(req *pipeline.Request) error {
	if !pipeline.IsPositiveInt(req.Data["price"]) {
		return apperrors.NewValidationError("price is not valid")
	}
	return nil
}

// idMatchesRoute allows updates without a body id; a supplied id must equal
// the id in the route, whatever type the client sent it as.
func idMatchesRoute(req *pipeline.Request) error {
	id, supplied := pipeline.BodyID(req)
	if !supplied || id == req.RouteID {
		return nil
	}
	return apperrors.NewValidationError(
		"Dish id does not match route id. Dish: %s, Route: %s", id, req.RouteID,
	)
}
