package amqp

import (
	"sort"
	"sync"
)

// Method is an AMQP method. Every method in the catalogue is a pointer to
// one of the structs in this package, e.g. *BasicPublish.
type Method interface {
	// ID returns the class and method identifiers.
	ID() (classID, methodID uint16)

	arguments() []argument
}

// MethodSpec is the catalogue entry of one method.
type MethodSpec struct {
	Name        string // Class.Method, e.g. "Basic.Publish"
	ClassID     uint16
	MethodID    uint16
	Synchronous bool
	Content     bool     // followed by a content header and body
	Deprecated  bool
	Responses   []string // valid replies to a synchronous method

	new func() Method
}

// Index returns the composite (class << 16 | method) identifier.
func (s *MethodSpec) Index() uint32 {
	return methodIndex(s.ClassID, s.MethodID)
}

// New returns a method with its catalogue defaults applied. The first
// construction of a deprecated method emits a warning on the package
// logger.
func (s *MethodSpec) New() Method {
	s.warnDeprecated()
	return s.new()
}

// deprecationWarned holds the names already warned about.
var deprecationWarned sync.Map

func (s *MethodSpec) warnDeprecated() {
	if !s.Deprecated {
		return
	}
	if _, loaded := deprecationWarned.LoadOrStore(s.Name, struct{}{}); !loaded {
		warn(logger(), "msg", "deprecated method", "method", s.Name)
	}
}

func methodIndex(classID, methodID uint16) uint32 {
	return uint32(classID)<<16 | uint32(methodID)
}

var catalogue = []*MethodSpec{
	{Name: "Connection.Start", ClassID: ClassConnection, MethodID: 10, Synchronous: true,
		Responses: []string{"Connection.StartOk"},
		new: func() Method {
			return &ConnectionStart{
				VersionMajor: VersionMajor,
				VersionMinor: VersionMinor,
				Mechanisms:   DefaultMechanism,
				Locales:      DefaultLocale,
			}
		}},
	{Name: "Connection.StartOk", ClassID: ClassConnection, MethodID: 11,
		new: func() Method { return &ConnectionStartOk{Mechanism: DefaultMechanism, Locale: DefaultLocale} }},
	{Name: "Connection.Secure", ClassID: ClassConnection, MethodID: 20, Synchronous: true,
		Responses: []string{"Connection.SecureOk"},
		new:       func() Method { return new(ConnectionSecure) }},
	{Name: "Connection.SecureOk", ClassID: ClassConnection, MethodID: 21,
		new: func() Method { return new(ConnectionSecureOk) }},
	{Name: "Connection.Tune", ClassID: ClassConnection, MethodID: 30, Synchronous: true,
		Responses: []string{"Connection.TuneOk"},
		new:       func() Method { return new(ConnectionTune) }},
	{Name: "Connection.TuneOk", ClassID: ClassConnection, MethodID: 31,
		new: func() Method { return new(ConnectionTuneOk) }},
	{Name: "Connection.Open", ClassID: ClassConnection, MethodID: 40, Synchronous: true,
		Responses: []string{"Connection.OpenOk"},
		new:       func() Method { return &ConnectionOpen{VirtualHost: DefaultVirtualHost} }},
	{Name: "Connection.OpenOk", ClassID: ClassConnection, MethodID: 41,
		new: func() Method { return new(ConnectionOpenOk) }},
	{Name: "Connection.Close", ClassID: ClassConnection, MethodID: 50, Synchronous: true,
		Responses: []string{"Connection.CloseOk"},
		new:       func() Method { return new(ConnectionClose) }},
	{Name: "Connection.CloseOk", ClassID: ClassConnection, MethodID: 51,
		new: func() Method { return new(ConnectionCloseOk) }},
	{Name: "Connection.Blocked", ClassID: ClassConnection, MethodID: 60,
		new: func() Method { return new(ConnectionBlocked) }},
	{Name: "Connection.Unblocked", ClassID: ClassConnection, MethodID: 61,
		new: func() Method { return new(ConnectionUnblocked) }},
	{Name: "Connection.UpdateSecret", ClassID: ClassConnection, MethodID: 70, Synchronous: true,
		Responses: []string{"Connection.UpdateSecretOk"},
		new:       func() Method { return new(ConnectionUpdateSecret) }},
	{Name: "Connection.UpdateSecretOk", ClassID: ClassConnection, MethodID: 71,
		new: func() Method { return new(ConnectionUpdateSecretOk) }},

	{Name: "Channel.Open", ClassID: ClassChannel, MethodID: 10, Synchronous: true,
		Responses: []string{"Channel.OpenOk"},
		new:       func() Method { return new(ChannelOpen) }},
	{Name: "Channel.OpenOk", ClassID: ClassChannel, MethodID: 11,
		new: func() Method { return new(ChannelOpenOk) }},
	{Name: "Channel.Flow", ClassID: ClassChannel, MethodID: 20, Synchronous: true,
		Responses: []string{"Channel.FlowOk"},
		new:       func() Method { return &ChannelFlow{Active: true} }},
	{Name: "Channel.FlowOk", ClassID: ClassChannel, MethodID: 21,
		new: func() Method { return &ChannelFlowOk{Active: true} }},
	{Name: "Channel.Close", ClassID: ClassChannel, MethodID: 40, Synchronous: true,
		Responses: []string{"Channel.CloseOk"},
		new:       func() Method { return new(ChannelClose) }},
	{Name: "Channel.CloseOk", ClassID: ClassChannel, MethodID: 41,
		new: func() Method { return new(ChannelCloseOk) }},

	{Name: "Exchange.Declare", ClassID: ClassExchange, MethodID: 10, Synchronous: true,
		Responses: []string{"Exchange.DeclareOk"},
		new:       func() Method { return &ExchangeDeclare{Type: DefaultExchange} }},
	{Name: "Exchange.DeclareOk", ClassID: ClassExchange, MethodID: 11,
		new: func() Method { return new(ExchangeDeclareOk) }},
	{Name: "Exchange.Delete", ClassID: ClassExchange, MethodID: 20, Synchronous: true,
		Responses: []string{"Exchange.DeleteOk"},
		new:       func() Method { return new(ExchangeDelete) }},
	{Name: "Exchange.DeleteOk", ClassID: ClassExchange, MethodID: 21,
		new: func() Method { return new(ExchangeDeleteOk) }},
	{Name: "Exchange.Bind", ClassID: ClassExchange, MethodID: 30, Synchronous: true,
		Responses: []string{"Exchange.BindOk"},
		new:       func() Method { return new(ExchangeBind) }},
	{Name: "Exchange.BindOk", ClassID: ClassExchange, MethodID: 31,
		new: func() Method { return new(ExchangeBindOk) }},
	{Name: "Exchange.Unbind", ClassID: ClassExchange, MethodID: 40, Synchronous: true,
		Responses: []string{"Exchange.UnbindOk"},
		new:       func() Method { return new(ExchangeUnbind) }},
	{Name: "Exchange.UnbindOk", ClassID: ClassExchange, MethodID: 51,
		new: func() Method { return new(ExchangeUnbindOk) }},

	{Name: "Queue.Declare", ClassID: ClassQueue, MethodID: 10, Synchronous: true,
		Responses: []string{"Queue.DeclareOk"},
		new:       func() Method { return new(QueueDeclare) }},
	{Name: "Queue.DeclareOk", ClassID: ClassQueue, MethodID: 11,
		new: func() Method { return new(QueueDeclareOk) }},
	{Name: "Queue.Bind", ClassID: ClassQueue, MethodID: 20, Synchronous: true,
		Responses: []string{"Queue.BindOk"},
		new:       func() Method { return new(QueueBind) }},
	{Name: "Queue.BindOk", ClassID: ClassQueue, MethodID: 21,
		new: func() Method { return new(QueueBindOk) }},
	{Name: "Queue.Purge", ClassID: ClassQueue, MethodID: 30, Synchronous: true,
		Responses: []string{"Queue.PurgeOk"},
		new:       func() Method { return new(QueuePurge) }},
	{Name: "Queue.PurgeOk", ClassID: ClassQueue, MethodID: 31,
		new: func() Method { return new(QueuePurgeOk) }},
	{Name: "Queue.Delete", ClassID: ClassQueue, MethodID: 40, Synchronous: true,
		Responses: []string{"Queue.DeleteOk"},
		new:       func() Method { return new(QueueDelete) }},
	{Name: "Queue.DeleteOk", ClassID: ClassQueue, MethodID: 41,
		new: func() Method { return new(QueueDeleteOk) }},
	{Name: "Queue.Unbind", ClassID: ClassQueue, MethodID: 50, Synchronous: true,
		Responses: []string{"Queue.UnbindOk"},
		new:       func() Method { return new(QueueUnbind) }},
	{Name: "Queue.UnbindOk", ClassID: ClassQueue, MethodID: 51,
		new: func() Method { return new(QueueUnbindOk) }},

	{Name: "Basic.Qos", ClassID: ClassBasic, MethodID: 10, Synchronous: true,
		Responses: []string{"Basic.QosOk"},
		new:       func() Method { return new(BasicQos) }},
	{Name: "Basic.QosOk", ClassID: ClassBasic, MethodID: 11,
		new: func() Method { return new(BasicQosOk) }},
	{Name: "Basic.Consume", ClassID: ClassBasic, MethodID: 20, Synchronous: true,
		Responses: []string{"Basic.ConsumeOk"},
		new:       func() Method { return new(BasicConsume) }},
	{Name: "Basic.ConsumeOk", ClassID: ClassBasic, MethodID: 21,
		new: func() Method { return new(BasicConsumeOk) }},
	{Name: "Basic.Cancel", ClassID: ClassBasic, MethodID: 30, Synchronous: true,
		Responses: []string{"Basic.CancelOk"},
		new:       func() Method { return new(BasicCancel) }},
	{Name: "Basic.CancelOk", ClassID: ClassBasic, MethodID: 31,
		new: func() Method { return new(BasicCancelOk) }},
	{Name: "Basic.Publish", ClassID: ClassBasic, MethodID: 40, Content: true,
		new: func() Method { return new(BasicPublish) }},
	{Name: "Basic.Return", ClassID: ClassBasic, MethodID: 50, Content: true,
		new: func() Method { return new(BasicReturn) }},
	{Name: "Basic.Deliver", ClassID: ClassBasic, MethodID: 60, Content: true,
		new: func() Method { return new(BasicDeliver) }},
	{Name: "Basic.Get", ClassID: ClassBasic, MethodID: 70, Synchronous: true,
		Responses: []string{"Basic.GetOk", "Basic.GetEmpty"},
		new:       func() Method { return new(BasicGet) }},
	{Name: "Basic.GetOk", ClassID: ClassBasic, MethodID: 71, Content: true,
		new: func() Method { return new(BasicGetOk) }},
	{Name: "Basic.GetEmpty", ClassID: ClassBasic, MethodID: 72,
		new: func() Method { return new(BasicGetEmpty) }},
	{Name: "Basic.Ack", ClassID: ClassBasic, MethodID: 80,
		new: func() Method { return new(BasicAck) }},
	{Name: "Basic.Reject", ClassID: ClassBasic, MethodID: 90,
		new: func() Method { return &BasicReject{Requeue: true} }},
	{Name: "Basic.RecoverAsync", ClassID: ClassBasic, MethodID: 100, Deprecated: true,
		new: func() Method { return new(BasicRecoverAsync) }},
	{Name: "Basic.Recover", ClassID: ClassBasic, MethodID: 110, Synchronous: true,
		Responses: []string{"Basic.RecoverOk"},
		new:       func() Method { return new(BasicRecover) }},
	{Name: "Basic.RecoverOk", ClassID: ClassBasic, MethodID: 111,
		new: func() Method { return new(BasicRecoverOk) }},
	{Name: "Basic.Nack", ClassID: ClassBasic, MethodID: 120,
		new: func() Method { return &BasicNack{Requeue: true} }},

	{Name: "Tx.Select", ClassID: ClassTx, MethodID: 10, Synchronous: true,
		Responses: []string{"Tx.SelectOk"},
		new:       func() Method { return new(TxSelect) }},
	{Name: "Tx.SelectOk", ClassID: ClassTx, MethodID: 11,
		new: func() Method { return new(TxSelectOk) }},
	{Name: "Tx.Commit", ClassID: ClassTx, MethodID: 20, Synchronous: true,
		Responses: []string{"Tx.CommitOk"},
		new:       func() Method { return new(TxCommit) }},
	{Name: "Tx.CommitOk", ClassID: ClassTx, MethodID: 21,
		new: func() Method { return new(TxCommitOk) }},
	{Name: "Tx.Rollback", ClassID: ClassTx, MethodID: 30, Synchronous: true,
		Responses: []string{"Tx.RollbackOk"},
		new:       func() Method { return new(TxRollback) }},
	{Name: "Tx.RollbackOk", ClassID: ClassTx, MethodID: 31,
		new: func() Method { return new(TxRollbackOk) }},

	{Name: "Confirm.Select", ClassID: ClassConfirm, MethodID: 10, Synchronous: true,
		Responses: []string{"Confirm.SelectOk"},
		new:       func() Method { return new(ConfirmSelect) }},
	{Name: "Confirm.SelectOk", ClassID: ClassConfirm, MethodID: 11,
		new: func() Method { return new(ConfirmSelectOk) }},
}

var (
	specsByIndex = make(map[uint32]*MethodSpec, len(catalogue))
	specsByName  = make(map[string]*MethodSpec, len(catalogue))
)

func init() {
	for _, s := range catalogue {
		specsByIndex[s.Index()] = s
		specsByName[s.Name] = s
	}
}

// LookupMethod returns the catalogue entry for a composite index.
func LookupMethod(index uint32) (*MethodSpec, bool) {
	s, ok := specsByIndex[index]
	return s, ok
}

// LookupMethodName returns the catalogue entry for a name such as
// "Basic.Publish".
func LookupMethodName(name string) (*MethodSpec, bool) {
	s, ok := specsByName[name]
	return s, ok
}

// SpecOf returns the catalogue entry of m.
func SpecOf(m Method) *MethodSpec {
	return specsByIndex[methodIndex(m.ID())]
}

// NewMethod constructs the named method with its catalogue defaults.
func NewMethod(name string) (Method, error) {
	s, ok := specsByName[name]
	if !ok {
		return nil, errorErrorf("amqp: unknown method %q", name)
	}
	return s.New(), nil
}

// Methods returns every catalogue entry ordered by composite index.
func Methods() []*MethodSpec {
	specs := make([]*MethodSpec, len(catalogue))
	copy(specs, catalogue)
	sort.Slice(specs, func(i, j int) bool { return specs[i].Index() < specs[j].Index() })
	return specs
}

func methodName(m Method) string {
	if s := SpecOf(m); s != nil {
		return s.Name
	}
	return "unknown"
}
