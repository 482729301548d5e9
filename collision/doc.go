// Package collision decides whether two axis-aligned boxes overlap, which
// axis the overlap should be resolved on, and how far the mover must be
// pushed back along that axis.
//
// Everything here is a pure function of its inputs. Callers decide which
// pairs to test and own writing the results into a component.Collidee.
//
// Sign convention: subtracting a correction from the mover's position on the
// resolved axis removes the overlap.
package collision
