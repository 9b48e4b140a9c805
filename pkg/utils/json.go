package utils

import (
	"bytes"
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if reflect.TypeOf(in) != reflect.TypeOf([]byte{}) {
		buffer, err = json.Marshal(in)
		if err != nil {
			fmt.Println(err)
		}
	} else {
		buffer = in.([]byte)
	}

	var out bytes.Buffer
	err = jsonIndent(&out, buffer)
	if err != nil {
		fmt.Println(err)
	}

	return out.String()
}

func jsonIndent(out *bytes.Buffer, in []byte) error {
	var tree any
	if err := json.Unmarshal(in, &tree); err != nil {
		return err
	}

	pretty, err := json.MarshalIndent(tree, "", "\t")
	if err != nil {
		return err
	}

	_, err = out.Write(pretty)
	return err
}
