package docstore

import (
	"context"
	"errors"
	"net"

	"whatabook/internal/dberr"

	"go.mongodb.org/mongo-driver/mongo"
)

// authenticationFailed is the server error code for rejected credentials.
const authenticationFailed = 18

func classify(op string, err error, fallback error) error {
	if err == nil {
		return nil
	}

	var de *dberr.Error
	if errors.As(err, &de) {
		return err
	}

	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) && serverErr.HasErrorCode(authenticationFailed) {
		return dberr.Connectivity(op, err)
	}

	var netErr net.Error
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return dberr.New(dberr.ErrNotFound, op, err)
	case errors.Is(err, mongo.ErrClientDisconnected),
		errors.Is(err, context.DeadlineExceeded),
		mongo.IsNetworkError(err),
		mongo.IsTimeout(err),
		errors.As(err, &netErr):
		return dberr.Connectivity(op, err)
	case mongo.IsDuplicateKeyError(err):
		return dberr.Query(op, err)
	}

	return dberr.New(fallback, op, err)
}
