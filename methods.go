package amqp

// Connection methods.

// ConnectionStart proposes the protocol version and security mechanisms to the client.
type ConnectionStart struct {
	VersionMajor     uint8
	VersionMinor     uint8
	ServerProperties Table
	Mechanisms       string
	Locales          string
}

func (*ConnectionStart) ID() (uint16, uint16) { return ClassConnection, 10 }

func (m *ConnectionStart) arguments() []argument {
	return []argument{
		arg("version-major", domainOctet, &m.VersionMajor),
		arg("version-minor", domainOctet, &m.VersionMinor),
		arg("server-properties", domainPeerProperties, &m.ServerProperties),
		arg("mechanisms", domainLongStr, &m.Mechanisms),
		arg("locales", domainLongStr, &m.Locales),
	}
}

// ConnectionStartOk selects a security mechanism and locale.
type ConnectionStartOk struct {
	ClientProperties Table
	Mechanism        string
	Response         string
	Locale           string
}

func (*ConnectionStartOk) ID() (uint16, uint16) { return ClassConnection, 11 }

func (m *ConnectionStartOk) arguments() []argument {
	return []argument{
		arg("client-properties", domainPeerProperties, &m.ClientProperties),
		arg("mechanism", domainShortStr, &m.Mechanism),
		arg("response", domainLongStr, &m.Response),
		arg("locale", domainShortStr, &m.Locale),
	}
}

// ConnectionSecure carries a SASL challenge.
type ConnectionSecure struct {
	Challenge string
}

func (*ConnectionSecure) ID() (uint16, uint16) { return ClassConnection, 20 }

func (m *ConnectionSecure) arguments() []argument {
	return []argument{
		arg("challenge", domainLongStr, &m.Challenge),
	}
}

// ConnectionSecureOk carries the SASL response.
type ConnectionSecureOk struct {
	Response string
}

func (*ConnectionSecureOk) ID() (uint16, uint16) { return ClassConnection, 21 }

func (m *ConnectionSecureOk) arguments() []argument {
	return []argument{
		arg("response", domainLongStr, &m.Response),
	}
}

// ConnectionTune proposes connection tuning parameters.
type ConnectionTune struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (*ConnectionTune) ID() (uint16, uint16) { return ClassConnection, 30 }

func (m *ConnectionTune) arguments() []argument {
	return []argument{
		arg("channel-max", domainShort, &m.ChannelMax),
		arg("frame-max", domainLong, &m.FrameMax),
		arg("heartbeat", domainShort, &m.Heartbeat),
	}
}

type ConnectionTuneOk struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (*ConnectionTuneOk) ID() (uint16, uint16) { return ClassConnection, 31 }

func (m *ConnectionTuneOk) arguments() []argument {
	return []argument{
		arg("channel-max", domainShort, &m.ChannelMax),
		arg("frame-max", domainLong, &m.FrameMax),
		arg("heartbeat", domainShort, &m.Heartbeat),
	}
}

// ConnectionOpen opens a connection to a virtual host.
type ConnectionOpen struct {
	VirtualHost  string
	Capabilities string
	Insist       bool
}

func (*ConnectionOpen) ID() (uint16, uint16) { return ClassConnection, 40 }

func (m *ConnectionOpen) arguments() []argument {
	return []argument{
		arg("virtual-host", domainPath, &m.VirtualHost),
		reserved("capabilities", domainShortStr, &m.Capabilities),
		reserved("insist", domainBit, &m.Insist),
	}
}

type ConnectionOpenOk struct {
	KnownHosts string
}

func (*ConnectionOpenOk) ID() (uint16, uint16) { return ClassConnection, 41 }

func (m *ConnectionOpenOk) arguments() []argument {
	return []argument{
		reserved("known-hosts", domainShortStr, &m.KnownHosts),
	}
}

// ConnectionClose requests a connection close.
type ConnectionClose struct {
	ReplyCode uint16
	ReplyText string
	ClassID   uint16
	MethodID  uint16
}

func (*ConnectionClose) ID() (uint16, uint16) { return ClassConnection, 50 }

func (m *ConnectionClose) arguments() []argument {
	return []argument{
		arg("reply-code", domainReplyCode, &m.ReplyCode),
		arg("reply-text", domainReplyText, &m.ReplyText),
		arg("class-id", domainClassID, &m.ClassID),
		arg("method-id", domainMethodID, &m.MethodID),
	}
}

type ConnectionCloseOk struct{}

func (*ConnectionCloseOk) ID() (uint16, uint16) { return ClassConnection, 51 }

func (*ConnectionCloseOk) arguments() []argument { return nil }

// ConnectionBlocked tells the client that the broker stopped reading from it.
type ConnectionBlocked struct {
	Reason string
}

func (*ConnectionBlocked) ID() (uint16, uint16) { return ClassConnection, 60 }

func (m *ConnectionBlocked) arguments() []argument {
	return []argument{
		arg("reason", domainShortStr, &m.Reason),
	}
}

type ConnectionUnblocked struct{}

func (*ConnectionUnblocked) ID() (uint16, uint16) { return ClassConnection, 61 }

func (*ConnectionUnblocked) arguments() []argument { return nil }

// ConnectionUpdateSecret replaces the credentials of an open connection.
type ConnectionUpdateSecret struct {
	NewSecret string
	Reason    string
}

func (*ConnectionUpdateSecret) ID() (uint16, uint16) { return ClassConnection, 70 }

func (m *ConnectionUpdateSecret) arguments() []argument {
	return []argument{
		arg("new-secret", domainLongStr, &m.NewSecret),
		arg("reason", domainShortStr, &m.Reason),
	}
}

type ConnectionUpdateSecretOk struct{}

func (*ConnectionUpdateSecretOk) ID() (uint16, uint16) { return ClassConnection, 71 }

func (*ConnectionUpdateSecretOk) arguments() []argument { return nil }

// Channel methods.

// ChannelOpen opens a channel.
type ChannelOpen struct {
	OutOfBand string
}

func (*ChannelOpen) ID() (uint16, uint16) { return ClassChannel, 10 }

func (m *ChannelOpen) arguments() []argument {
	return []argument{
		reserved("out-of-band", domainShortStr, &m.OutOfBand),
	}
}

type ChannelOpenOk struct {
	ChannelID string
}

func (*ChannelOpenOk) ID() (uint16, uint16) { return ClassChannel, 11 }

func (m *ChannelOpenOk) arguments() []argument {
	return []argument{
		reserved("channel-id", domainLongStr, &m.ChannelID),
	}
}

// ChannelFlow asks the peer to pause or restart the flow of content.
type ChannelFlow struct {
	Active bool
}

func (*ChannelFlow) ID() (uint16, uint16) { return ClassChannel, 20 }

func (m *ChannelFlow) arguments() []argument {
	return []argument{
		arg("active", domainBit, &m.Active),
	}
}

type ChannelFlowOk struct {
	Active bool
}

func (*ChannelFlowOk) ID() (uint16, uint16) { return ClassChannel, 21 }

func (m *ChannelFlowOk) arguments() []argument {
	return []argument{
		arg("active", domainBit, &m.Active),
	}
}

// ChannelClose requests a channel close.
type ChannelClose struct {
	ReplyCode uint16
	ReplyText string
	ClassID   uint16
	MethodID  uint16
}

func (*ChannelClose) ID() (uint16, uint16) { return ClassChannel, 40 }

func (m *ChannelClose) arguments() []argument {
	return []argument{
		arg("reply-code", domainReplyCode, &m.ReplyCode),
		arg("reply-text", domainReplyText, &m.ReplyText),
		arg("class-id", domainClassID, &m.ClassID),
		arg("method-id", domainMethodID, &m.MethodID),
	}
}

type ChannelCloseOk struct{}

func (*ChannelCloseOk) ID() (uint16, uint16) { return ClassChannel, 41 }

func (*ChannelCloseOk) arguments() []argument { return nil }

// Exchange methods.

// ExchangeDeclare creates an exchange or checks that it exists.
type ExchangeDeclare struct {
	Ticket     uint16
	Exchange   string
	Type       string
	Passive    bool
	Durable    bool
	AutoDelete bool
	Internal   bool
	NoWait     bool
	Arguments  Table
}

func (*ExchangeDeclare) ID() (uint16, uint16) { return ClassExchange, 10 }

func (m *ExchangeDeclare) arguments() []argument {
	return []argument{
		reserved("ticket", domainShort, &m.Ticket),
		arg("exchange", domainExchangeName, &m.Exchange),
		arg("type", domainShortStr, &m.Type),
		arg("passive", domainBit, &m.Passive),
		arg("durable", domainBit, &m.Durable),
		arg("auto-delete", domainBit, &m.AutoDelete),
		reserved("internal", domainBit, &m.Internal),
		arg("no-wait", domainNoWait, &m.NoWait),
		arg("arguments", domainTable, &m.Arguments),
	}
}

type ExchangeDeclareOk struct{}

func (*ExchangeDeclareOk) ID() (uint16, uint16) { return ClassExchange, 11 }

func (*ExchangeDeclareOk) arguments() []argument { return nil }

// ExchangeDelete deletes an exchange.
type ExchangeDelete struct {
	Ticket   uint16
	Exchange string
	IfUnused bool
	NoWait   bool
}

func (*ExchangeDelete) ID() (uint16, uint16) { return ClassExchange, 20 }

func (m *ExchangeDelete) arguments() []argument {
	return []argument{
		reserved("ticket", domainShort, &m.Ticket),
		arg("exchange", domainExchangeName, &m.Exchange),
		arg("if-unused", domainBit, &m.IfUnused),
		arg("no-wait", domainNoWait, &m.NoWait),
	}
}

type ExchangeDeleteOk struct{}

func (*ExchangeDeleteOk) ID() (uint16, uint16) { return ClassExchange, 21 }

func (*ExchangeDeleteOk) arguments() []argument { return nil }

// ExchangeBind binds an exchange to another exchange.
type ExchangeBind struct {
	Ticket      uint16
	Destination string
	Source      string
	RoutingKey  string
	NoWait      bool
	Arguments   Table
}

func (*ExchangeBind) ID() (uint16, uint16) { return ClassExchange, 30 }

func (m *ExchangeBind) arguments() []argument {
	return []argument{
		reserved("ticket", domainShort, &m.Ticket),
		arg("destination", domainExchangeName, &m.Destination),
		arg("source", domainExchangeName, &m.Source),
		arg("routing-key", domainShortStr, &m.RoutingKey),
		arg("no-wait", domainNoWait, &m.NoWait),
		arg("arguments", domainTable, &m.Arguments),
	}
}

type ExchangeBindOk struct{}

func (*ExchangeBindOk) ID() (uint16, uint16) { return ClassExchange, 31 }

func (*ExchangeBindOk) arguments() []argument { return nil }

// ExchangeUnbind removes an exchange to exchange binding.
type ExchangeUnbind struct {
	Ticket      uint16
	Destination string
	Source      string
	RoutingKey  string
	NoWait      bool
	Arguments   Table
}

func (*ExchangeUnbind) ID() (uint16, uint16) { return ClassExchange, 40 }

func (m *ExchangeUnbind) arguments() []argument {
	return []argument{
		reserved("ticket", domainShort, &m.Ticket),
		arg("destination", domainExchangeName, &m.Destination),
		arg("source", domainExchangeName, &m.Source),
		arg("routing-key", domainShortStr, &m.RoutingKey),
		arg("no-wait", domainNoWait, &m.NoWait),
		arg("arguments", domainTable, &m.Arguments),
	}
}

type ExchangeUnbindOk struct{}

func (*ExchangeUnbindOk) ID() (uint16, uint16) { return ClassExchange, 51 }

func (*ExchangeUnbindOk) arguments() []argument { return nil }

// Queue methods.

// QueueDeclare creates a queue or checks that it exists.
type QueueDeclare struct {
	Ticket     uint16
	Queue      string
	Passive    bool
	Durable    bool
	Exclusive  bool
	AutoDelete bool
	NoWait     bool
	Arguments  Table
}

func (*QueueDeclare) ID() (uint16, uint16) { return ClassQueue, 10 }

func (m *QueueDeclare) arguments() []argument {
	return []argument{
		reserved("ticket", domainShort, &m.Ticket),
		arg("queue", domainQueueName, &m.Queue),
		arg("passive", domainBit, &m.Passive),
		arg("durable", domainBit, &m.Durable),
		arg("exclusive", domainBit, &m.Exclusive),
		arg("auto-delete", domainBit, &m.AutoDelete),
		arg("no-wait", domainNoWait, &m.NoWait),
		arg("arguments", domainTable, &m.Arguments),
	}
}

// QueueDeclareOk confirms a queue declaration.
type QueueDeclareOk struct {
	Queue         string
	MessageCount  uint32
	ConsumerCount uint32
}

func (*QueueDeclareOk) ID() (uint16, uint16) { return ClassQueue, 11 }

func (m *QueueDeclareOk) arguments() []argument {
	return []argument{
		arg("queue", domainQueueName, &m.Queue),
		arg("message-count", domainMessageCount, &m.MessageCount),
		arg("consumer-count", domainLong, &m.ConsumerCount),
	}
}

// QueueBind binds a queue to an exchange.
type QueueBind struct {
	Ticket     uint16
	Queue      string
	Exchange   string
	RoutingKey string
	NoWait     bool
	Arguments  Table
}

func (*QueueBind) ID() (uint16, uint16) { return ClassQueue, 20 }

func (m *QueueBind) arguments() []argument {
	return []argument{
		reserved("ticket", domainShort, &m.Ticket),
		arg("queue", domainQueueName, &m.Queue),
		arg("exchange", domainExchangeName, &m.Exchange),
		arg("routing-key", domainShortStr, &m.RoutingKey),
		arg("no-wait", domainNoWait, &m.NoWait),
		arg("arguments", domainTable, &m.Arguments),
	}
}

type QueueBindOk struct{}

func (*QueueBindOk) ID() (uint16, uint16) { return ClassQueue, 21 }

func (*QueueBindOk) arguments() []argument { return nil }

// QueuePurge removes all messages from a queue that are not awaiting acknowledgment.
type QueuePurge struct {
	Ticket uint16
	Queue  string
	NoWait bool
}

func (*QueuePurge) ID() (uint16, uint16) { return ClassQueue, 30 }

func (m *QueuePurge) arguments() []argument {
	return []argument{
		reserved("ticket", domainShort, &m.Ticket),
		arg("queue", domainQueueName, &m.Queue),
		arg("no-wait", domainNoWait, &m.NoWait),
	}
}

type QueuePurgeOk struct {
	MessageCount uint32
}

func (*QueuePurgeOk) ID() (uint16, uint16) { return ClassQueue, 31 }

func (m *QueuePurgeOk) arguments() []argument {
	return []argument{
		arg("message-count", domainMessageCount, &m.MessageCount),
	}
}

// QueueDelete deletes a queue.
type QueueDelete struct {
	Ticket   uint16
	Queue    string
	IfUnused bool
	IfEmpty  bool
	NoWait   bool
}

func (*QueueDelete) ID() (uint16, uint16) { return ClassQueue, 40 }

func (m *QueueDelete) arguments() []argument {
	return []argument{
		reserved("ticket", domainShort, &m.Ticket),
		arg("queue", domainQueueName, &m.Queue),
		arg("if-unused", domainBit, &m.IfUnused),
		arg("if-empty", domainBit, &m.IfEmpty),
		arg("no-wait", domainNoWait, &m.NoWait),
	}
}

type QueueDeleteOk struct {
	MessageCount uint32
}

func (*QueueDeleteOk) ID() (uint16, uint16) { return ClassQueue, 41 }

func (m *QueueDeleteOk) arguments() []argument {
	return []argument{
		arg("message-count", domainMessageCount, &m.MessageCount),
	}
}

// QueueUnbind removes a queue binding.
type QueueUnbind struct {
	Ticket     uint16
	Queue      string
	Exchange   string
	RoutingKey string
	Arguments  Table
}

func (*QueueUnbind) ID() (uint16, uint16) { return ClassQueue, 50 }

func (m *QueueUnbind) arguments() []argument {
	return []argument{
		reserved("ticket", domainShort, &m.Ticket),
		arg("queue", domainQueueName, &m.Queue),
		arg("exchange", domainExchangeName, &m.Exchange),
		arg("routing-key", domainShortStr, &m.RoutingKey),
		arg("arguments", domainTable, &m.Arguments),
	}
}

type QueueUnbindOk struct{}

func (*QueueUnbindOk) ID() (uint16, uint16) { return ClassQueue, 51 }

func (*QueueUnbindOk) arguments() []argument { return nil }

// Basic methods.

// BasicQos requests a prefetch window.
type BasicQos struct {
	PrefetchSize  uint32
	PrefetchCount uint16
	Global        bool
}

func (*BasicQos) ID() (uint16, uint16) { return ClassBasic, 10 }

func (m *BasicQos) arguments() []argument {
	return []argument{
		arg("prefetch-size", domainLong, &m.PrefetchSize),
		arg("prefetch-count", domainShort, &m.PrefetchCount),
		arg("global", domainBit, &m.Global),
	}
}

type BasicQosOk struct{}

func (*BasicQosOk) ID() (uint16, uint16) { return ClassBasic, 11 }

func (*BasicQosOk) arguments() []argument { return nil }

// BasicConsume starts a queue consumer.
type BasicConsume struct {
	Ticket      uint16
	Queue       string
	ConsumerTag string
	NoLocal     bool
	NoAck       bool
	Exclusive   bool
	NoWait      bool
	Arguments   Table
}

func (*BasicConsume) ID() (uint16, uint16) { return ClassBasic, 20 }

func (m *BasicConsume) arguments() []argument {
	return []argument{
		reserved("ticket", domainShort, &m.Ticket),
		arg("queue", domainQueueName, &m.Queue),
		arg("consumer-tag", domainConsumerTag, &m.ConsumerTag),
		arg("no-local", domainNoLocal, &m.NoLocal),
		arg("no-ack", domainNoAck, &m.NoAck),
		arg("exclusive", domainBit, &m.Exclusive),
		arg("no-wait", domainNoWait, &m.NoWait),
		arg("arguments", domainTable, &m.Arguments),
	}
}

type BasicConsumeOk struct {
	ConsumerTag string
}

func (*BasicConsumeOk) ID() (uint16, uint16) { return ClassBasic, 21 }

func (m *BasicConsumeOk) arguments() []argument {
	return []argument{
		arg("consumer-tag", domainConsumerTag, &m.ConsumerTag),
	}
}

// BasicCancel ends a consumer.
type BasicCancel struct {
	ConsumerTag string
	NoWait      bool
}

func (*BasicCancel) ID() (uint16, uint16) { return ClassBasic, 30 }

func (m *BasicCancel) arguments() []argument {
	return []argument{
		arg("consumer-tag", domainConsumerTag, &m.ConsumerTag),
		arg("no-wait", domainNoWait, &m.NoWait),
	}
}

type BasicCancelOk struct {
	ConsumerTag string
}

func (*BasicCancelOk) ID() (uint16, uint16) { return ClassBasic, 31 }

func (m *BasicCancelOk) arguments() []argument {
	return []argument{
		arg("consumer-tag", domainConsumerTag, &m.ConsumerTag),
	}
}

// BasicPublish publishes a message. It is followed by a content header and body.
type BasicPublish struct {
	Ticket     uint16
	Exchange   string
	RoutingKey string
	Mandatory  bool
	Immediate  bool
}

func (*BasicPublish) ID() (uint16, uint16) { return ClassBasic, 40 }

func (m *BasicPublish) arguments() []argument {
	return []argument{
		reserved("ticket", domainShort, &m.Ticket),
		arg("exchange", domainExchangeName, &m.Exchange),
		arg("routing-key", domainShortStr, &m.RoutingKey),
		arg("mandatory", domainBit, &m.Mandatory),
		arg("immediate", domainBit, &m.Immediate),
	}
}

// BasicReturn returns an undeliverable message.
type BasicReturn struct {
	ReplyCode  uint16
	ReplyText  string
	Exchange   string
	RoutingKey string
}

func (*BasicReturn) ID() (uint16, uint16) { return ClassBasic, 50 }

func (m *BasicReturn) arguments() []argument {
	return []argument{
		arg("reply-code", domainReplyCode, &m.ReplyCode),
		arg("reply-text", domainReplyText, &m.ReplyText),
		arg("exchange", domainExchangeName, &m.Exchange),
		arg("routing-key", domainShortStr, &m.RoutingKey),
	}
}

// BasicDeliver delivers a message to a consumer.
type BasicDeliver struct {
	ConsumerTag string
	DeliveryTag uint64
	Redelivered bool
	Exchange    string
	RoutingKey  string
}

func (*BasicDeliver) ID() (uint16, uint16) { return ClassBasic, 60 }

func (m *BasicDeliver) arguments() []argument {
	return []argument{
		arg("consumer-tag", domainConsumerTag, &m.ConsumerTag),
		arg("delivery-tag", domainDeliveryTag, &m.DeliveryTag),
		arg("redelivered", domainRedelivered, &m.Redelivered),
		arg("exchange", domainExchangeName, &m.Exchange),
		arg("routing-key", domainShortStr, &m.RoutingKey),
	}
}

// BasicGet fetches one message from a queue.
type BasicGet struct {
	Ticket uint16
	Queue  string
	NoAck  bool
}

func (*BasicGet) ID() (uint16, uint16) { return ClassBasic, 70 }

func (m *BasicGet) arguments() []argument {
	return []argument{
		reserved("ticket", domainShort, &m.Ticket),
		arg("queue", domainQueueName, &m.Queue),
		arg("no-ack", domainNoAck, &m.NoAck),
	}
}

// BasicGetOk answers a Basic.Get with a message.
type BasicGetOk struct {
	DeliveryTag  uint64
	Redelivered  bool
	Exchange     string
	RoutingKey   string
	MessageCount uint32
}

func (*BasicGetOk) ID() (uint16, uint16) { return ClassBasic, 71 }

func (m *BasicGetOk) arguments() []argument {
	return []argument{
		arg("delivery-tag", domainDeliveryTag, &m.DeliveryTag),
		arg("redelivered", domainRedelivered, &m.Redelivered),
		arg("exchange", domainExchangeName, &m.Exchange),
		arg("routing-key", domainShortStr, &m.RoutingKey),
		arg("message-count", domainMessageCount, &m.MessageCount),
	}
}

// BasicGetEmpty answers a Basic.Get on an empty queue.
type BasicGetEmpty struct {
	ClusterID string
}

func (*BasicGetEmpty) ID() (uint16, uint16) { return ClassBasic, 72 }

func (m *BasicGetEmpty) arguments() []argument {
	return []argument{
		reserved("cluster-id", domainShortStr, &m.ClusterID),
	}
}

// BasicAck acknowledges one or more messages.
type BasicAck struct {
	DeliveryTag uint64
	Multiple    bool
}

func (*BasicAck) ID() (uint16, uint16) { return ClassBasic, 80 }

func (m *BasicAck) arguments() []argument {
	return []argument{
		arg("delivery-tag", domainDeliveryTag, &m.DeliveryTag),
		arg("multiple", domainBit, &m.Multiple),
	}
}

// BasicReject rejects a message.
type BasicReject struct {
	DeliveryTag uint64
	Requeue     bool
}

func (*BasicReject) ID() (uint16, uint16) { return ClassBasic, 90 }

func (m *BasicReject) arguments() []argument {
	return []argument{
		arg("delivery-tag", domainDeliveryTag, &m.DeliveryTag),
		arg("requeue", domainBit, &m.Requeue),
	}
}

// BasicRecoverAsync redelivers unacknowledged messages. Deprecated in favor of Basic.Recover.
type BasicRecoverAsync struct {
	Requeue bool
}

func (*BasicRecoverAsync) ID() (uint16, uint16) { return ClassBasic, 100 }

func (m *BasicRecoverAsync) arguments() []argument {
	return []argument{
		arg("requeue", domainBit, &m.Requeue),
	}
}

// BasicRecover redelivers unacknowledged messages.
type BasicRecover struct {
	Requeue bool
}

func (*BasicRecover) ID() (uint16, uint16) { return ClassBasic, 110 }

func (m *BasicRecover) arguments() []argument {
	return []argument{
		arg("requeue", domainBit, &m.Requeue),
	}
}

type BasicRecoverOk struct{}

func (*BasicRecoverOk) ID() (uint16, uint16) { return ClassBasic, 111 }

func (*BasicRecoverOk) arguments() []argument { return nil }

// BasicNack rejects one or more messages.
type BasicNack struct {
	DeliveryTag uint64
	Multiple    bool
	Requeue     bool
}

func (*BasicNack) ID() (uint16, uint16) { return ClassBasic, 120 }

func (m *BasicNack) arguments() []argument {
	return []argument{
		arg("delivery-tag", domainDeliveryTag, &m.DeliveryTag),
		arg("multiple", domainBit, &m.Multiple),
		arg("requeue", domainBit, &m.Requeue),
	}
}

// Tx methods.

// TxSelect puts the channel in transactional mode.
type TxSelect struct{}

func (*TxSelect) ID() (uint16, uint16) { return ClassTx, 10 }

func (*TxSelect) arguments() []argument { return nil }

type TxSelectOk struct{}

func (*TxSelectOk) ID() (uint16, uint16) { return ClassTx, 11 }

func (*TxSelectOk) arguments() []argument { return nil }

type TxCommit struct{}

func (*TxCommit) ID() (uint16, uint16) { return ClassTx, 20 }

func (*TxCommit) arguments() []argument { return nil }

type TxCommitOk struct{}

func (*TxCommitOk) ID() (uint16, uint16) { return ClassTx, 21 }

func (*TxCommitOk) arguments() []argument { return nil }

type TxRollback struct{}

func (*TxRollback) ID() (uint16, uint16) { return ClassTx, 30 }

func (*TxRollback) arguments() []argument { return nil }

type TxRollbackOk struct{}

func (*TxRollbackOk) ID() (uint16, uint16) { return ClassTx, 31 }

func (*TxRollbackOk) arguments() []argument { return nil }

// Confirm methods.

// ConfirmSelect puts the channel in publisher confirm mode.
type ConfirmSelect struct {
	NoWait bool
}

func (*ConfirmSelect) ID() (uint16, uint16) { return ClassConfirm, 10 }

func (m *ConfirmSelect) arguments() []argument {
	return []argument{
		arg("nowait", domainNoWait, &m.NoWait),
	}
}

type ConfirmSelectOk struct{}

func (*ConfirmSelectOk) ID() (uint16, uint16) { return ClassConfirm, 11 }

func (*ConfirmSelectOk) arguments() []argument { return nil }
