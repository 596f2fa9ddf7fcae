package telemetry

import (
	"time"

	"cydkit-go/errcode"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTT publishes telemetry records to a broker.
type MQTT struct {
	client  mqtt.Client
	qos     byte
	timeout time.Duration
}

// DialMQTT connects to broker ("tcp://host:1883"). The client reconnects on
// its own after the first successful connect.
func DialMQTT(broker, clientID string, timeout time.Duration) (*MQTT, error) {
	if broker == "" {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "telemetry.dial", Msg: "empty broker"}
	}
	if clientID == "" {
		clientID = "cydkit"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetConnectTimeout(timeout)
	opts.SetAutoReconnect(true)
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		println("Error: mqtt connection lost:", err.Error())
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, errcode.Wrap(errcode.Timeout, "telemetry.dial", nil)
	}
	if err := token.Error(); err != nil {
		return nil, errcode.Wrap(errcode.NotConnected, "telemetry.dial", err)
	}
	println("Info: mqtt connected to", broker)
	return &MQTT{client: client, qos: 1, timeout: timeout}, nil
}

func (m *MQTT) Publish(topic string, payload []byte) error {
	if !m.client.IsConnected() {
		return errcode.NotConnected
	}
	token := m.client.Publish(topic, m.qos, false, payload)
	if !token.WaitTimeout(m.timeout) {
		return errcode.Wrap(errcode.Timeout, "telemetry.publish", nil)
	}
	return token.Error()
}

func (m *MQTT) Close() {
	m.client.Disconnect(250)
}
