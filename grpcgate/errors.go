package grpcgate

import (
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/multiformats/go-multicodec"

	"ontograph.dev/datagate/gate"
)

// mapRPC reconstructs structured gate errors from the status codes and the
// RuleID message prefix emitted by Server.mapErr. Anything else passes
// through unchanged.
func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	ruleID, msg := splitRuleID(st.Message())
	switch st.Code() {
	case codes.FailedPrecondition:
		return &gate.Error{
			Kind:    gate.KindUnsupportedCodec,
			RuleID:  ruleID,
			Codec:   codecFromMessage(msg),
			Message: msg,
		}
	case codes.InvalidArgument:
		switch {
		case strings.HasPrefix(ruleID, "DG-ENV-"):
			return &gate.Error{Kind: gate.KindMalformedEnvelope, RuleID: ruleID, Message: msg}
		case strings.HasPrefix(ruleID, "DG-PAYLOAD-"):
			return &gate.Error{Kind: gate.KindMalformedPayload, RuleID: ruleID, Message: msg}
		}
	}
	return err
}

func splitRuleID(msg string) (ruleID, rest string) {
	id, rest, ok := strings.Cut(msg, ": ")
	if !ok || !strings.HasPrefix(id, "DG-") {
		return "", msg
	}
	return id, rest
}

// codecFromMessage recovers the codec identifier from the "(0x..)" suffix the
// gate puts in unsupported-codec messages. Best-effort: 0 when absent.
func codecFromMessage(msg string) multicodec.Code {
	i := strings.LastIndex(msg, "(0x")
	if i < 0 {
		return 0
	}
	hex := strings.TrimSuffix(msg[i+3:], ")")
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0
	}
	return multicodec.Code(v)
}
