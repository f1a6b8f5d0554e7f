// Package errors provides structured errors for the rpg-sheetfill project.
//
// Every failure in a conversion run falls into one of a small set of codes:
//   - Structural: a required element is missing from the character document,
//     or the document could not be decoded at all
//   - FormulaParse: a duration/range formula does not match any known shape
//   - IO: the input could not be read or the output could not be written
//   - InvalidArgument: bad configuration or flags
//   - Internal: anything unexpected
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.Structural("missing element character/abilities")
//	err := errors.FormulaParsef("unknown multiplier %q", rhs)
//
// Adding metadata:
//
//	err := errors.Structural("missing element").
//	    WithMeta("path", "character/abilities")
//
// Wrapping errors keeps the original code:
//
//	if err := extractor.Extract(root); err != nil {
//	    return errors.Wrap(err, "failed to extract character")
//	}
//
// # Error Checking
//
//	if errors.IsStructural(err) {
//	    // the document does not match the expected schema
//	}
//
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//	os.Exit(code.ExitCode())
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("input", cfg.Input, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
